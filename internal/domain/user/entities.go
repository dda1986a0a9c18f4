package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:72" json:"-"`
	FullName     string    `gorm:"size:120" json:"full_name"`
	Phone        string    `gorm:"size:15" json:"phone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Principal is the authenticated caller, carried explicitly through every
// controller operation (never read from ambient state).
type Principal struct {
	UserID   string
	Email    string
	FullName string
	Phone    string
}
