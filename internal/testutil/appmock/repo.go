package appmock

import (
	"context"

	domain "temple-membership-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetLatestByUserIDFn           func(ctx context.Context, userID string) (*domain.Application, error)
	ListByUserIDFn                func(ctx context.Context, userID string) ([]domain.Application, error)
	ListFn                        func(ctx context.Context, f domain.ListFilter) ([]domain.Application, error)
	IdentityNumberInUseFn         func(ctx context.Context, aadharNumber, excludingUserID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLatestByUserID(ctx context.Context, userID string) (*domain.Application, error) {
	if m.GetLatestByUserIDFn != nil {
		return m.GetLatestByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) IdentityNumberInUse(ctx context.Context, aadharNumber, excludingUserID string) (bool, error) {
	if m.IdentityNumberInUseFn != nil {
		return m.IdentityNumberInUseFn(ctx, aadharNumber, excludingUserID)
	}
	return false, nil
}
