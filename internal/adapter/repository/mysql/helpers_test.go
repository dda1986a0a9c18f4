package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"temple-membership-backend/internal/domain/donation"
	"temple-membership-backend/internal/domain/event"
	"temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/role"
	"temple-membership-backend/internal/domain/user"
)

// --- SQLite-friendly application schema only for tests (no ENUM) ---

type applicationSQLite struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id;column:application_id"`
	UserID        string `gorm:"size:36;column:user_id"`

	FullName     string `gorm:"size:120;column:full_name"`
	Address      string `gorm:"type:text;column:address"`
	Phone        string `gorm:"size:15;column:phone"`
	City         string `gorm:"size:64;column:city"`
	State        string `gorm:"size:64;column:state"`
	Pincode      string `gorm:"size:6;column:pincode"`
	AadharNumber string `gorm:"size:12;uniqueIndex:ux_applications_aadhar;column:aadhar_number"`

	PaymentID      *string `gorm:"size:64;column:payment_id"`
	FamilyMembers  string  `gorm:"type:text;column:family_members"`
	DonationAmount float64 `gorm:"column:donation_amount"`

	Status   string  `gorm:"type:text;column:status"` // ← no enum
	MemberID *string `gorm:"size:32;uniqueIndex:ux_applications_member_id;column:member_id"`

	IdentityDocPath   string `gorm:"type:text;column:identity_doc_path"`
	PassportPhotoPath string `gorm:"type:text;column:passport_photo_path"`

	DecidedAt *time.Time     `gorm:"column:decided_at"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "membership_applications" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// application schema plus the portable models. TranslateError matches the
// production gorm config so duplicate keys surface as gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe application model, NOT the domain model.
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&user.User{},
		&role.UserRole{},
		&profile.Profile{},
		&donation.Donation{},
		&event.TempleEvent{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
