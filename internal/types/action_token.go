package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenPurposeVerify   = "verify"
	TokenPurposeRegister = "register"
)

// ActionToken is a single-use credential proving control of an email address.
// Verify tokens reference an existing unverified account; register tokens
// predate the account and carry only the invited email. Validity is computed
// from ExpiresAt at validation time; consumption deletes the row.
type ActionToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Purpose   string     `gorm:"not null;column:purpose" json:"purpose"`
	Email     string     `gorm:"not null;column:email" json:"email"`
	UserID    *uuid.UUID `gorm:"index;column:user_id" json:"user_id,omitempty"`
	ExpiresAt time.Time  `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ActionToken) TableName() string {
	return "action_token"
}

func (t *ActionToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
