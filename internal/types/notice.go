package types

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a board entry. System notices record lifecycle events (new hire,
// leave transitions) and are immutable through the regular edit operation.
type Notice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Content   string    `gorm:"not null;column:content" json:"content"`
	UserID    uuid.UUID `gorm:"index;not null;column:user_id" json:"user_id"`
	System    bool      `gorm:"not null;default:false" json:"system"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Notice) TableName() string {
	return "notice"
}
