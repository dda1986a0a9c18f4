package donation

import (
	"context"
	"errors"
	"time"
)

// Payment itself is manual (UPI QR, off-system); a Donation row only records
// the pledge.
const MinimumAmount = 10

var (
	ErrValidation   = errors.New("invalid donation input")
	ErrAccessDenied = errors.New("access denied")
)

type Donation struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID    string    `gorm:"size:36;index:idx_donations_user" json:"user_id"`
	DonorName string    `gorm:"size:120" json:"donor_name"`
	Phone     string    `gorm:"size:15" json:"phone"`
	Amount    float64   `gorm:"type:decimal(10,2)" json:"amount"`
	UpiID     string    `gorm:"size:64" json:"upi_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string { return "donations" }

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	List(ctx context.Context) ([]Donation, error)
}
