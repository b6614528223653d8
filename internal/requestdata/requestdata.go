package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var requestDataKey ctxKey

// RequestData carries the authenticated identity for the lifetime of one
// request. Authority mirrors the persisted flag: 0 regular staff, 1 admin.
type RequestData struct {
	TokenString string
	UserID      uuid.UUID
	Authority   int
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
