package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/requestdata"
)

// actor returns the authenticated identity or aborts with 401. Routes behind
// RequireAuth always have one; this is the fail-closed fallback.
func actor(c *gin.Context) (*requestdata.RequestData, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		AbortUnauthorized(c, "you must be logged in")
		return nil, false
	}
	return rd, true
}
