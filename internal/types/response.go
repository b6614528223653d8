package types

import (
	"time"

	"github.com/google/uuid"
)

// Response is a threaded reply on a notice. Deleted responses stay in the
// table and are excluded from listings.
type Response struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"not null;column:content" json:"content"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	UserID    uuid.UUID `gorm:"index;not null;column:user_id" json:"user_id"`
	NoticeID  uuid.UUID `gorm:"index;not null;column:notice_id" json:"notice_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Response) TableName() string {
	return "response"
}

// ResponseView is a response annotated with its author's display name. No
// other account fields are exposed.
type ResponseView struct {
	ID             uuid.UUID `json:"id"`
	Content        string    `json:"content"`
	NoticeID       uuid.UUID `json:"notice_id"`
	UserID         uuid.UUID `json:"user_id"`
	AuthorFullName string    `json:"author_fullname"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
