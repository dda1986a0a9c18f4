package mysql

import (
	"context"

	donationDomain "temple-membership-backend/internal/domain/donation"

	"gorm.io/gorm"
)

type DonationRepository struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) *DonationRepository { return &DonationRepository{db: db} }

func (r *DonationRepository) Create(ctx context.Context, d *donationDomain.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepository) List(ctx context.Context) ([]donationDomain.Donation, error) {
	var out []donationDomain.Donation
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
