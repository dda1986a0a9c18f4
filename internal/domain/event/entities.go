package event

import (
	"context"
	"errors"
	"time"
)

const StatusPublished = "published"

var (
	ErrNotFound     = errors.New("event not found")
	ErrValidation   = errors.New("invalid event input")
	ErrAccessDenied = errors.New("access denied")
)

type TempleEvent struct {
	ID                string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Title             string    `gorm:"size:200" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	EventDate         time.Time `gorm:"type:date" json:"event_date"`
	EventTime         string    `gorm:"size:8" json:"event_time"`
	Location          string    `gorm:"size:200" json:"location"`
	ImageURL          *string   `gorm:"type:text" json:"image_url,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `gorm:"size:64" json:"recurrence_pattern,omitempty"`
	Status            string    `gorm:"size:32;default:'published'" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TempleEvent) TableName() string { return "temple_events" }

type Repository interface {
	Create(ctx context.Context, e *TempleEvent) error
	Save(ctx context.Context, e *TempleEvent) error
	Delete(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*TempleEvent, error)
	ListPublished(ctx context.Context) ([]TempleEvent, error)
}
