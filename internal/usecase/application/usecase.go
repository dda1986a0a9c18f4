package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"temple-membership-backend/internal/domain/application"
	"temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/role"
	"temple-membership-backend/internal/domain/uow"
	"temple-membership-backend/internal/domain/user"
	"temple-membership-backend/pkg/id"

	"gorm.io/gorm"
)

// Fee fixed at submission time; payment happens off-system via UPI.
const membershipDonation = 1000

type Buckets struct {
	IdentityDocs   string
	PassportPhotos string
	Avatars        string
}

type Usecase struct {
	repo     application.Repository
	roles    role.Repository
	profiles profile.Repository
	uow      uow.UnitOfWork
	docs     DocumentStore
	notifier Notifier
	buckets  Buckets
}

func NewUsecase(
	repo application.Repository,
	roles role.Repository,
	profiles profile.Repository,
	tx uow.UnitOfWork,
	docs DocumentStore,
	notifier Notifier,
	buckets Buckets,
) *Usecase {
	return &Usecase{repo: repo, roles: roles, profiles: profiles, uow: tx, docs: docs, notifier: notifier, buckets: buckets}
}

// requireAdmin re-checks the role store on every call; results are never
// cached across requests.
func (u *Usecase) requireAdmin(ctx context.Context, p user.Principal) error {
	ok, err := u.roles.HasRole(ctx, p.UserID, role.Admin)
	if err != nil {
		return fmt.Errorf("%w: role lookup failed", application.ErrPersistence)
	}
	if !ok {
		return application.ErrAccessDenied
	}
	return nil
}

func storagePath(userID, contentType string) string {
	return fmt.Sprintf("%s/%d%s", userID, time.Now().UnixNano(), docExtensions[contentType])
}

func (u *Usecase) uploadDocument(ctx context.Context, bucket, userID string, d *Document) (string, error) {
	path := storagePath(userID, d.ContentType)
	if err := u.docs.Upload(ctx, bucket, path, d.Content, d.ContentType); err != nil {
		log.Printf("upload to %s failed: %v", bucket, err)
		return "", application.ErrUpload
	}
	return path, nil
}

// mapWriteErr keeps store internals out of user-facing errors. A duplicate
// key at commit time is the losing side of the identity-number race.
func mapWriteErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return application.ErrConflict
	}
	log.Printf("application write failed: %v", err)
	return application.ErrPersistence
}

// Submit creates the owner's application, or updates the most recent one
// while it is still pending. On update, an omitted document keeps its stored
// path.
func (u *Usecase) Submit(ctx context.Context, p user.Principal, in SubmitInput, identityDoc, passportPhoto *Document) (*ApplicationDTO, error) {
	if err := validateFields(fields{
		fullName: in.FullName, address: in.Address, phone: in.Phone,
		city: in.City, state: in.State, pincode: in.Pincode, aadharNumber: in.AadharNumber,
	}); err != nil {
		return nil, err
	}
	if err := validateDocument("identity document", identityDoc); err != nil {
		return nil, err
	}
	if err := validateDocument("passport photo", passportPhoto); err != nil {
		return nil, err
	}

	// Advisory check; the unique index still decides under concurrency.
	inUse, err := u.repo.IdentityNumberInUse(ctx, in.AadharNumber, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: uniqueness check failed", application.ErrPersistence)
	}
	if inUse {
		return nil, application.ErrConflict
	}

	prior, err := u.repo.GetLatestByUserID(ctx, p.UserID)
	switch {
	case err == nil:
		return u.resubmit(ctx, p, prior, in, identityDoc, passportPhoto)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return u.firstSubmit(ctx, p, in, identityDoc, passportPhoto)
	default:
		return nil, fmt.Errorf("%w: lookup failed", application.ErrPersistence)
	}
}

func (u *Usecase) firstSubmit(ctx context.Context, p user.Principal, in SubmitInput, identityDoc, passportPhoto *Document) (*ApplicationDTO, error) {
	if identityDoc == nil {
		return nil, fmt.Errorf("%w: identity document is required", application.ErrValidation)
	}
	if passportPhoto == nil {
		return nil, fmt.Errorf("%w: passport photo is required", application.ErrValidation)
	}

	docPath, err := u.uploadDocument(ctx, u.buckets.IdentityDocs, p.UserID, identityDoc)
	if err != nil {
		return nil, err
	}
	photoPath, err := u.uploadDocument(ctx, u.buckets.PassportPhotos, p.UserID, passportPhoto)
	if err != nil {
		return nil, err
	}

	a := &application.Application{
		ApplicationID:     id.NewID32(),
		UserID:            p.UserID,
		FullName:          in.FullName,
		Address:           in.Address,
		Phone:             in.Phone,
		City:              in.City,
		State:             in.State,
		Pincode:           in.Pincode,
		AadharNumber:      in.AadharNumber,
		FamilyMembers:     in.FamilyMembers,
		DonationAmount:    membershipDonation,
		Status:            application.StatusPending,
		IdentityDocPath:   docPath,
		PassportPhotoPath: photoPath,
	}
	if in.PaymentID != "" {
		a.PaymentID = &in.PaymentID
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, mapWriteErr(err)
	}

	u.dispatchConfirmation(p.Email, a)
	return toDTO(a), nil
}

func (u *Usecase) resubmit(ctx context.Context, p user.Principal, prior *application.Application, in SubmitInput, identityDoc, passportPhoto *Document) (*ApplicationDTO, error) {
	if prior.Status != application.StatusPending {
		return nil, application.ErrApplicationDecided
	}

	prior.FullName = in.FullName
	prior.Address = in.Address
	prior.Phone = in.Phone
	prior.City = in.City
	prior.State = in.State
	prior.Pincode = in.Pincode
	prior.AadharNumber = in.AadharNumber
	prior.FamilyMembers = in.FamilyMembers
	if in.PaymentID != "" {
		prior.PaymentID = &in.PaymentID
	}

	if identityDoc != nil {
		path, err := u.uploadDocument(ctx, u.buckets.IdentityDocs, p.UserID, identityDoc)
		if err != nil {
			return nil, err
		}
		prior.IdentityDocPath = path
	}
	if passportPhoto != nil {
		path, err := u.uploadDocument(ctx, u.buckets.PassportPhotos, p.UserID, passportPhoto)
		if err != nil {
			return nil, err
		}
		prior.PassportPhotoPath = path
	}

	if err := u.repo.Save(ctx, prior); err != nil {
		return nil, mapWriteErr(err)
	}
	return toDTO(prior), nil
}

// dispatchConfirmation is fire-and-forget: it runs on its own goroutine with
// its own deadline and a failure never blocks or fails the submission.
func (u *Usecase) dispatchConfirmation(email string, a *application.Application) {
	if u.notifier == nil {
		return
	}
	appID, name, amount := a.ApplicationID, a.FullName, a.DonationAmount
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.notifier.SendMembershipConfirmation(ctx, email, name, amount, appID); err != nil {
			log.Printf("confirmation email for application %s failed: %v", appID, err)
		}
	}()
}

// ListForOwner returns the caller's applications, newest first.
func (u *Usecase) ListForOwner(ctx context.Context, p user.Principal) ([]ApplicationDTO, error) {
	apps, err := u.repo.ListByUserID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: list failed", application.ErrPersistence)
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}
