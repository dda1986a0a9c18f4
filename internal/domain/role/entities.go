package role

import (
	"context"
	"time"
)

const Admin = "admin"

// Assigned out of band (seed SQL); read-only input to authorization checks.
type UserRole struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:36;uniqueIndex:ux_user_roles_user_role" json:"user_id"`
	Role      string    `gorm:"size:32;uniqueIndex:ux_user_roles_user_role" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string { return "user_roles" }

type Repository interface {
	// HasRole is evaluated per call, never cached.
	HasRole(ctx context.Context, userID, role string) (bool, error)
}
