package donationmock

import (
	"context"

	domain "temple-membership-backend/internal/domain/donation"
)

// Repo is a function-backed mock that satisfies donation.Repository.
type Repo struct {
	CreateFn func(ctx context.Context, d *domain.Donation) error
	ListFn   func(ctx context.Context) ([]domain.Donation, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Donation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
