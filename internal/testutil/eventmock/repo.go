package eventmock

import (
	"context"

	domain "temple-membership-backend/internal/domain/event"
)

// Repo is a function-backed mock that satisfies event.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, e *domain.TempleEvent) error
	SaveFn          func(ctx context.Context, e *domain.TempleEvent) error
	DeleteFn        func(ctx context.Context, eventID string) error
	GetByIDFn       func(ctx context.Context, eventID string) (*domain.TempleEvent, error)
	ListPublishedFn func(ctx context.Context) ([]domain.TempleEvent, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.TempleEvent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.TempleEvent) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, eventID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, eventID)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, eventID string) (*domain.TempleEvent, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, eventID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListPublished(ctx context.Context) ([]domain.TempleEvent, error) {
	if m.ListPublishedFn != nil {
		return m.ListPublishedFn(ctx)
	}
	return nil, nil
}
