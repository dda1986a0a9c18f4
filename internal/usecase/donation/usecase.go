package donation

import (
	"context"
	"fmt"
	"strings"
	"time"

	donationDomain "temple-membership-backend/internal/domain/donation"
	"temple-membership-backend/internal/domain/role"
	"temple-membership-backend/internal/domain/user"

	"github.com/google/uuid"
)

type Usecase struct {
	repo  donationDomain.Repository
	roles role.Repository
}

func NewUsecase(repo donationDomain.Repository, roles role.Repository) *Usecase {
	return &Usecase{repo: repo, roles: roles}
}

type RecordInput struct {
	DonorName string
	Phone     string
	Amount    float64
	UpiID     string
}

type DonationDTO struct {
	ID        string    `json:"id"`
	DonorName string    `json:"donor_name"`
	Phone     string    `json:"phone"`
	Amount    float64   `json:"amount"`
	UpiID     string    `json:"upi_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Record stores the pledge; the transfer itself happens out-of-band via the
// UPI QR code.
func (u *Usecase) Record(ctx context.Context, p user.Principal, in RecordInput) (*DonationDTO, error) {
	switch {
	case len(strings.TrimSpace(in.DonorName)) < 2:
		return nil, fmt.Errorf("%w: donor name must be at least 2 characters", donationDomain.ErrValidation)
	case len(strings.TrimSpace(in.Phone)) < 10:
		return nil, fmt.Errorf("%w: phone must be at least 10 digits", donationDomain.ErrValidation)
	case in.Amount < donationDomain.MinimumAmount:
		return nil, fmt.Errorf("%w: minimum donation amount is %d", donationDomain.ErrValidation, donationDomain.MinimumAmount)
	case !strings.Contains(in.UpiID, "@"):
		return nil, fmt.Errorf("%w: invalid UPI id", donationDomain.ErrValidation)
	}

	d := &donationDomain.Donation{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		DonorName: in.DonorName,
		Phone:     in.Phone,
		Amount:    in.Amount,
		UpiID:     in.UpiID,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// ListAll is admin-only.
func (u *Usecase) ListAll(ctx context.Context, p user.Principal) ([]DonationDTO, error) {
	ok, err := u.roles.HasRole(ctx, p.UserID, role.Admin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, donationDomain.ErrAccessDenied
	}
	ds, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DonationDTO, 0, len(ds))
	for i := range ds {
		out = append(out, *toDTO(&ds[i]))
	}
	return out, nil
}

func toDTO(d *donationDomain.Donation) *DonationDTO {
	return &DonationDTO{
		ID:        d.ID,
		DonorName: d.DonorName,
		Phone:     d.Phone,
		Amount:    d.Amount,
		UpiID:     d.UpiID,
		CreatedAt: d.CreatedAt,
	}
}
