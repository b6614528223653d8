package types

import (
	"time"

	"github.com/google/uuid"
)

// DeletedMessageContent replaces the body of a soft-deleted message. The row
// and its timestamps survive.
const DeletedMessageContent = "This message has been deleted"

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content     string    `gorm:"not null;column:content" json:"content"`
	AuthorID    uuid.UUID `gorm:"index;not null;column:author_id" json:"author_id"`
	RecipientID uuid.UUID `gorm:"index;not null;column:recipient_id" json:"recipient_id"`
	Deleted     bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Message) TableName() string {
	return "message"
}
