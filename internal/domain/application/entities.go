package application

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CanTransitionTo: pending is the only non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && (target == StatusApproved || target == StatusRejected)
}

var (
	ErrNotFound           = errors.New("application not found")
	ErrValidation         = errors.New("invalid application input")
	ErrConflict           = errors.New("identity number already registered")
	ErrAccessDenied       = errors.New("access denied")
	ErrUpload             = errors.New("document upload failed")
	ErrPersistence        = errors.New("could not save application")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrApplicationDecided = errors.New("application already decided")
	ErrNotApproved        = errors.New("application not approved")
	ErrMemberIDMissing    = errors.New("member id not assigned")
)

type FamilyMember struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Relation string `json:"relation"`
}

// Table: membership_applications. Document columns hold storage paths
// ({user_id}/{nanos}.{ext}), never URLs; viewing always goes through a
// short-lived signed URL.
type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"application_id"`
	UserID        string `gorm:"size:36;index:idx_applications_user" json:"user_id"`

	FullName     string `gorm:"size:120" json:"full_name"`
	Address      string `gorm:"type:text" json:"address"`
	Phone        string `gorm:"size:15" json:"phone"`
	City         string `gorm:"size:64" json:"city"`
	State        string `gorm:"size:64" json:"state"`
	Pincode      string `gorm:"size:6" json:"pincode"`
	AadharNumber string `gorm:"size:12;uniqueIndex:ux_applications_aadhar" json:"aadhar_number"`

	PaymentID      *string                           `gorm:"size:64" json:"payment_id,omitempty"`
	FamilyMembers  datatypes.JSONSlice[FamilyMember] `gorm:"column:family_members" json:"family_members"`
	DonationAmount float64                           `gorm:"type:decimal(10,2)" json:"donation_amount"`

	Status   Status  `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	MemberID *string `gorm:"size:32;uniqueIndex:ux_applications_member_id" json:"member_id,omitempty"`

	IdentityDocPath   string `gorm:"type:text" json:"identity_doc_path"`
	PassportPhotoPath string `gorm:"type:text" json:"passport_photo_path"`

	DecidedAt *time.Time     `json:"decided_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "membership_applications" }
