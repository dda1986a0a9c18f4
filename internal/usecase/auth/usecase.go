package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/user"
	"temple-membership-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("invalid signup input")

	reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type Usecase struct {
	users    user.Repository
	profiles profile.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users user.Repository, profiles profile.Repository, secret []byte, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, profiles: profiles, secret: secret, tokenTTL: tokenTTL}
}

type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type SignInInput struct {
	Email    string
	Password string
}

type SessionDTO struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

func (u *Usecase) SignUp(ctx context.Context, in SignUpInput) (*SessionDTO, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case !reEmail.MatchString(in.Email):
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	case len(in.Password) < 8:
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	case len(strings.TrimSpace(in.FullName)) < 2:
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	}

	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Phone:        in.Phone,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailTaken
		}
		return nil, err
	}

	// profile row mirrors the signup metadata; independent lifecycle after
	if err := u.profiles.Save(ctx, &profile.Profile{
		UserID:   usr.ID,
		FullName: usr.FullName,
		Phone:    usr.Phone,
	}); err != nil {
		return nil, err
	}

	return u.session(usr)
}

func (u *Usecase) SignIn(ctx context.Context, in SignInInput) (*SessionDTO, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		// same error whether the account exists or not
		return nil, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}
	return u.session(usr)
}

func (u *Usecase) session(usr *user.User) (*SessionDTO, error) {
	tok, err := token.Issue(u.secret, usr.ID, usr.Email, usr.FullName, usr.Phone, u.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{
		Token:    tok,
		UserID:   usr.ID,
		Email:    usr.Email,
		FullName: usr.FullName,
		Phone:    usr.Phone,
	}, nil
}
