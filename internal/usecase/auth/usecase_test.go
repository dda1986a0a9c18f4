package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/user"
	"temple-membership-backend/internal/testutil/profilemock"
	"temple-membership-backend/internal/testutil/usermock"
	"temple-membership-backend/pkg/token"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long")

func notFoundUsers() *usermock.Repo {
	return &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestSignUp_Validation(t *testing.T) {
	uc := NewUsecase(notFoundUsers(), &profilemock.Repo{}, testSecret, time.Hour)

	cases := []SignUpInput{
		{Email: "not-an-email", Password: "longenough", FullName: "Ram"},
		{Email: "ram@example.com", Password: "short", FullName: "Ram"},
		{Email: "ram@example.com", Password: "longenough", FullName: "R"},
	}
	for _, in := range cases {
		if _, err := uc.SignUp(context.Background(), in); !errors.Is(err, ErrValidation) {
			t.Fatalf("want ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestSignUp_CreatesUserProfileAndSession(t *testing.T) {
	var createdUser *user.User
	users := notFoundUsers()
	users.CreateFn = func(_ context.Context, u *user.User) error {
		createdUser = u
		return nil
	}

	var savedProfile *profile.Profile
	profiles := &profilemock.Repo{
		SaveFn: func(_ context.Context, p *profile.Profile) error {
			savedProfile = p
			return nil
		},
	}

	uc := NewUsecase(users, profiles, testSecret, time.Hour)

	sess, err := uc.SignUp(context.Background(), SignUpInput{
		Email:    "  Ram@Example.COM ",
		Password: "longenough",
		FullName: "Ram Kumar",
		Phone:    "9876543210",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if createdUser == nil {
		t.Fatalf("user never created")
	}
	if createdUser.Email != "ram@example.com" {
		t.Fatalf("email not normalized: %q", createdUser.Email)
	}
	if createdUser.PasswordHash == "longenough" || createdUser.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("longenough")) != nil {
		t.Fatalf("stored hash does not verify")
	}
	if savedProfile == nil || savedProfile.UserID != createdUser.ID || savedProfile.FullName != "Ram Kumar" {
		t.Fatalf("profile row not mirrored: %+v", savedProfile)
	}

	// session token round-trips through the parser
	claims, err := token.Parse(testSecret, sess.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != createdUser.ID || claims.Email != "ram@example.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestSignUp_EmailTaken(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*user.User, error) {
			return &user.User{ID: "u1", Email: "ram@example.com"}, nil
		},
	}
	uc := NewUsecase(users, &profilemock.Repo{}, testSecret, time.Hour)

	_, err := uc.SignUp(context.Background(), SignUpInput{
		Email: "ram@example.com", Password: "longenough", FullName: "Ram",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestSignUp_DuplicateAtCommitMapsToEmailTaken(t *testing.T) {
	users := notFoundUsers()
	users.CreateFn = func(context.Context, *user.User) error { return gorm.ErrDuplicatedKey }
	uc := NewUsecase(users, &profilemock.Repo{}, testSecret, time.Hour)

	_, err := uc.SignUp(context.Background(), SignUpInput{
		Email: "ram@example.com", Password: "longenough", FullName: "Ram",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken on duplicate key, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := &user.User{ID: "u1", Email: "ram@example.com", PasswordHash: string(hash), FullName: "Ram"}
	users := &usermock.Repo{
		GetByEmailFn: func(_ context.Context, email string) (*user.User, error) {
			if email != "ram@example.com" {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
	}
	uc := NewUsecase(users, &profilemock.Repo{}, testSecret, time.Hour)

	sess, err := uc.SignIn(context.Background(), SignInInput{Email: "Ram@Example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if sess.UserID != "u1" || sess.Token == "" {
		t.Fatalf("bad session: %+v", sess)
	}

	// wrong password and unknown account fail identically
	_, errWrongPass := uc.SignIn(context.Background(), SignInInput{Email: "ram@example.com", Password: "incorrect"})
	_, errNoAccount := uc.SignIn(context.Background(), SignInInput{Email: "ghost@example.com", Password: "longenough"})
	if !errors.Is(errWrongPass, user.ErrInvalidCredentials) || !errors.Is(errNoAccount, user.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for both, got %v / %v", errWrongPass, errNoAccount)
	}
}
