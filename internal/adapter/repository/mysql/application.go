package mysql

import (
	"context"
	"strings"

	appDomain "temple-membership-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out appDomain.Application
	res := q.Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetLatestByUserID(ctx context.Context, userID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByUserID(ctx context.Context, userID string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter) ([]appDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Name != "" {
		q = q.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.AadharNumber != "" {
		q = q.Where("aadhar_number LIKE ?", "%"+f.AadharNumber+"%")
	}
	var out []appDomain.Application
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) IdentityNumberInUse(ctx context.Context, aadharNumber, excludingUserID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("aadhar_number = ?", aadharNumber)
	if excludingUserID != "" {
		q = q.Where("user_id <> ?", excludingUserID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
