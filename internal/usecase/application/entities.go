package application

import (
	"context"
	"time"

	"temple-membership-backend/internal/domain/application"
)

// DocumentStore is the private-bucket side of the object store.
type DocumentStore interface {
	Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

// Notifier sends the submission confirmation. Best effort: failures are
// logged, never surfaced to the submitter.
type Notifier interface {
	SendMembershipConfirmation(ctx context.Context, email, fullName string, donationAmount float64, applicationID string) error
}

// Document is an uploaded file as received from the request.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

type SubmitInput struct {
	FullName      string
	Address       string
	Phone         string
	City          string
	State         string
	Pincode       string
	AadharNumber  string
	PaymentID     string
	FamilyMembers []application.FamilyMember
}

type AdminUpdateInput struct {
	FullName     string
	Address      string
	Phone        string
	City         string
	State        string
	Pincode      string
	AadharNumber string
}

type ApplicationDTO struct {
	ApplicationID     string                     `json:"application_id"`
	UserID            string                     `json:"user_id"`
	FullName          string                     `json:"full_name"`
	Address           string                     `json:"address"`
	Phone             string                     `json:"phone"`
	City              string                     `json:"city"`
	State             string                     `json:"state"`
	Pincode           string                     `json:"pincode"`
	AadharNumber      string                     `json:"aadhar_number"`
	PaymentID         *string                    `json:"payment_id,omitempty"`
	FamilyMembers     []application.FamilyMember `json:"family_members"`
	DonationAmount    float64                    `json:"donation_amount"`
	Status            string                     `json:"status"`
	MemberID          *string                    `json:"member_id,omitempty"`
	IdentityDocPath   string                     `json:"identity_doc_path"`
	PassportPhotoPath string                     `json:"passport_photo_path"`
	DecidedAt         *time.Time                 `json:"decided_at,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
}

// MemberCardDTO is the read-only card view for an approved, id-carrying
// application. PhotoURL is a short-lived signed URL.
type MemberCardDTO struct {
	MemberID     string `json:"member_id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	AadharNumber string `json:"aadhar_number"`
	ApprovedOn   string `json:"approved_on"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

func toDTO(a *application.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:     a.ApplicationID,
		UserID:            a.UserID,
		FullName:          a.FullName,
		Address:           a.Address,
		Phone:             a.Phone,
		City:              a.City,
		State:             a.State,
		Pincode:           a.Pincode,
		AadharNumber:      a.AadharNumber,
		PaymentID:         a.PaymentID,
		FamilyMembers:     a.FamilyMembers,
		DonationAmount:    a.DonationAmount,
		Status:            string(a.Status),
		MemberID:          a.MemberID,
		IdentityDocPath:   a.IdentityDocPath,
		PassportPhotoPath: a.PassportPhotoPath,
		DecidedAt:         a.DecidedAt,
		CreatedAt:         a.CreatedAt,
	}
}
