package uow

import (
	"context"

	"temple-membership-backend/internal/domain/application"
	"temple-membership-backend/internal/domain/role"
)

type Repos struct {
	Applications application.Repository
	Roles        role.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
