package rolemock

import "context"

// Repo is a function-backed mock that satisfies role.Repository.
type Repo struct {
	HasRoleFn func(ctx context.Context, userID, role string) (bool, error)
}

func (m *Repo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	if m.HasRoleFn != nil {
		return m.HasRoleFn(ctx, userID, role)
	}
	return false, nil
}

// Admin returns a mock that grants the admin role to exactly one user id.
func Admin(adminUserID string) *Repo {
	return &Repo{HasRoleFn: func(_ context.Context, userID, _ string) (bool, error) {
		return userID == adminUserID, nil
	}}
}
