package application

import "context"

// ListFilter is a conjunction: zero values are skipped.
type ListFilter struct {
	Status       Status
	Name         string // case-insensitive substring
	AadharNumber string // substring
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// Row-locking variant for status transitions inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	GetLatestByUserID(ctx context.Context, userID string) (*Application, error)
	ListByUserID(ctx context.Context, userID string) ([]Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, error)
	// Advisory uniqueness check; the unique index is authoritative at commit.
	IdentityNumberInUse(ctx context.Context, aadharNumber, excludingUserID string) (bool, error)
}
