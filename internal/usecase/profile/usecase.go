package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	profileDomain "temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/user"

	"gorm.io/gorm"
)

var ErrValidation = errors.New("invalid profile input")

const (
	avatarURLTTL   = 10 * time.Minute
	maxAvatarBytes = 5 << 20
)

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// AvatarStore is the avatars-bucket slice of the object store.
type AvatarStore interface {
	Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

type Usecase struct {
	repo         profileDomain.Repository
	store        AvatarStore
	avatarBucket string
}

func NewUsecase(repo profileDomain.Repository, store AvatarStore, avatarBucket string) *Usecase {
	return &Usecase{repo: repo, store: store, avatarBucket: avatarBucket}
}

type ProfileDTO struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type UpdateInput struct {
	FullName string
	Phone    string
}

type Avatar struct {
	ContentType string
	Content     []byte
}

func (u *Usecase) Get(ctx context.Context, p user.Principal) (*ProfileDTO, error) {
	prof, err := u.repo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileDomain.ErrNotFound
		}
		return nil, err
	}
	return u.toDTO(ctx, prof), nil
}

func (u *Usecase) Update(ctx context.Context, p user.Principal, in UpdateInput) (*ProfileDTO, error) {
	if len(strings.TrimSpace(in.FullName)) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	}
	prof, err := u.repo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileDomain.ErrNotFound
		}
		return nil, err
	}
	prof.FullName = in.FullName
	prof.Phone = in.Phone
	if err := u.repo.Save(ctx, prof); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, prof), nil
}

// UploadAvatar stores the image under {user_id}/{nanos}.{ext} and records the
// path on the profile row.
func (u *Usecase) UploadAvatar(ctx context.Context, p user.Principal, a Avatar) (*ProfileDTO, error) {
	ext, ok := avatarExtensions[a.ContentType]
	if !ok {
		return nil, fmt.Errorf("%w: avatar must be jpeg or png", ErrValidation)
	}
	if len(a.Content) == 0 || len(a.Content) > maxAvatarBytes {
		return nil, fmt.Errorf("%w: avatar must be non-empty and at most 5 MB", ErrValidation)
	}

	prof, err := u.repo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileDomain.ErrNotFound
		}
		return nil, err
	}

	path := fmt.Sprintf("%s/%d%s", p.UserID, time.Now().UnixNano(), ext)
	if err := u.store.Upload(ctx, u.avatarBucket, path, a.Content, a.ContentType); err != nil {
		log.Printf("avatar upload for %s failed: %v", p.UserID, err)
		return nil, errors.New("avatar upload failed")
	}

	prof.AvatarPath = path
	if err := u.repo.Save(ctx, prof); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, prof), nil
}

func (u *Usecase) toDTO(ctx context.Context, prof *profileDomain.Profile) *ProfileDTO {
	dto := &ProfileDTO{UserID: prof.UserID, FullName: prof.FullName, Phone: prof.Phone}
	if prof.AvatarPath != "" {
		if url, err := u.store.SignedURL(ctx, u.avatarBucket, prof.AvatarPath, avatarURLTTL); err == nil {
			dto.AvatarURL = url
		}
	}
	return dto
}
