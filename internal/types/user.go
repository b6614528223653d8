package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuthorityStaff = 0
	AuthorityAdmin = 1
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"not null;column:full_name" json:"fullname"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Gender    string    `gorm:"not null;column:gender" json:"gender"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	Authority int       `gorm:"not null;default:0" json:"authority"`
	Leave     bool      `gorm:"not null;default:false" json:"leave"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) IsAdmin() bool {
	return u.Authority >= AuthorityAdmin
}
