package application

import (
	"context"
	"errors"
	"log"
	"time"

	"temple-membership-backend/internal/domain/application"
	"temple-membership-backend/internal/domain/user"

	"gorm.io/gorm"
)

const signedURLTTL = 10 * time.Minute

// FetchMemberCard derives the printable card for an approved application.
// Owner or admin only. The photo URL is signed per call and expires with the
// TTL; when no passport photo is stored the profile avatar is used instead.
func (u *Usecase) FetchMemberCard(ctx context.Context, p user.Principal, applicationID string) (*MemberCardDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, application.ErrPersistence
	}

	if a.UserID != p.UserID {
		if err := u.requireAdmin(ctx, p); err != nil {
			return nil, application.ErrAccessDenied
		}
	}
	if a.Status != application.StatusApproved {
		return nil, application.ErrNotApproved
	}
	if a.MemberID == nil || *a.MemberID == "" {
		return nil, application.ErrMemberIDMissing
	}

	approvedAt := a.CreatedAt
	if a.DecidedAt != nil {
		approvedAt = *a.DecidedAt
	}

	return &MemberCardDTO{
		MemberID:     *a.MemberID,
		FullName:     a.FullName,
		Phone:        a.Phone,
		Address:      a.Address,
		City:         a.City,
		State:        a.State,
		AadharNumber: a.AadharNumber,
		ApprovedOn:   approvedAt.UTC().Format("02 Jan 2006"),
		PhotoURL:     u.resolvePhotoURL(ctx, a),
	}, nil
}

// resolvePhotoURL prefers the passport photo attached to the application and
// falls back to the profile avatar. A missing photo is not an error.
func (u *Usecase) resolvePhotoURL(ctx context.Context, a *application.Application) string {
	if a.PassportPhotoPath != "" {
		url, err := u.docs.SignedURL(ctx, u.buckets.PassportPhotos, a.PassportPhotoPath, signedURLTTL)
		if err == nil && url != "" {
			return url
		}
		log.Printf("sign passport photo for %s failed: %v", a.ApplicationID, err)
	}

	prof, err := u.profiles.GetByUserID(ctx, a.UserID)
	if err != nil || prof.AvatarPath == "" {
		return ""
	}
	url, err := u.docs.SignedURL(ctx, u.buckets.Avatars, prof.AvatarPath, signedURLTTL)
	if err != nil {
		return ""
	}
	return url
}
