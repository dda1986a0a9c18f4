package mysql

import (
	"context"
	"testing"

	"temple-membership-backend/internal/domain/role"
)

func TestHasRole(t *testing.T) {
	db := openTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	if err := db.Create(&role.UserRole{UserID: "admin-1", Role: role.Admin}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	ok, err := repo.HasRole(ctx, "admin-1", role.Admin)
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if !ok {
		t.Fatalf("seeded admin not recognized")
	}

	ok, err = repo.HasRole(ctx, "user-1", role.Admin)
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if ok {
		t.Fatalf("plain user must not be admin")
	}

	// role string must match exactly
	ok, err = repo.HasRole(ctx, "admin-1", "moderator")
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if ok {
		t.Fatalf("unexpected role match")
	}
}
