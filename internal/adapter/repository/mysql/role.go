package mysql

import (
	"context"

	roleDomain "temple-membership-backend/internal/domain/role"

	"gorm.io/gorm"
)

type RoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{db: db} }

func (r *RoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&roleDomain.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
