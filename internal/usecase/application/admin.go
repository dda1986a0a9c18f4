package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"temple-membership-backend/internal/domain/application"
	"temple-membership-backend/internal/domain/uow"
	"temple-membership-backend/internal/domain/user"

	"gorm.io/gorm"
)

// ListAll is the admin review list; filters are a conjunction.
func (u *Usecase) ListAll(ctx context.Context, p user.Principal, f application.ListFilter) ([]ApplicationDTO, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	apps, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: list failed", application.ErrPersistence)
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// Transition advances pending → approved|rejected under a row lock. It never
// assigns a member id; issuance is a separate manual step.
func (u *Usecase) Transition(ctx context.Context, p user.Principal, applicationID string, target application.Status) (*ApplicationDTO, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if target != application.StatusApproved && target != application.StatusRejected {
		return nil, application.ErrInvalidTransition
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *application.Application) error {
		if !a.Status.CanTransitionTo(target) {
			return application.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.Status = target
		a.DecidedAt = &now
		if err := r.Applications.Save(ctx, a); err != nil {
			return mapWriteErr(err)
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// AssignMemberID records a manually issued member id on an approved
// application. Reassignment is rejected.
func (u *Usecase) AssignMemberID(ctx context.Context, p user.Principal, applicationID, memberID string) (*ApplicationDTO, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if len(memberID) < 3 || len(memberID) > 32 {
		return nil, fmt.Errorf("%w: member id must be 3-32 characters", application.ErrValidation)
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *application.Application) error {
		if a.Status != application.StatusApproved {
			return application.ErrNotApproved
		}
		if a.MemberID != nil {
			return fmt.Errorf("%w: member id already assigned", application.ErrConflict)
		}
		a.MemberID = &memberID
		if err := r.Applications.Save(ctx, a); err != nil {
			return mapWriteErr(err)
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// AdminUpdate is the full-field correction flow. It never touches status or
// member id.
func (u *Usecase) AdminUpdate(ctx context.Context, p user.Principal, applicationID string, in AdminUpdateInput) (*ApplicationDTO, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if err := validateFields(fields{
		fullName: in.FullName, address: in.Address, phone: in.Phone,
		city: in.City, state: in.State, pincode: in.Pincode, aadharNumber: in.AadharNumber,
	}); err != nil {
		return nil, err
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *application.Application) error {
		inUse, err := r.Applications.IdentityNumberInUse(ctx, in.AadharNumber, a.UserID)
		if err != nil {
			return fmt.Errorf("%w: uniqueness check failed", application.ErrPersistence)
		}
		if inUse {
			return application.ErrConflict
		}
		a.FullName = in.FullName
		a.Address = in.Address
		a.Phone = in.Phone
		a.City = in.City
		a.State = in.State
		a.Pincode = in.Pincode
		a.AadharNumber = in.AadharNumber
		if err := r.Applications.Save(ctx, a); err != nil {
			return mapWriteErr(err)
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
