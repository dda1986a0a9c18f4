package profilemock

import (
	"context"

	domain "temple-membership-backend/internal/domain/profile"
)

// Repo is a function-backed mock that satisfies profile.Repository.
type Repo struct {
	SaveFn        func(ctx context.Context, p *domain.Profile) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.Profile, error)
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}
