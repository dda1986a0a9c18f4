package profile

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("profile not found")

// One row per user, created at signup. AvatarPath is a storage path in the
// avatars bucket, not a URL.
type Profile struct {
	UserID     string    `gorm:"primaryKey;size:36;column:user_id" json:"user_id"`
	FullName   string    `gorm:"size:120" json:"full_name"`
	Phone      string    `gorm:"size:15" json:"phone"`
	AvatarPath string    `gorm:"type:text" json:"avatar_path"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
}
