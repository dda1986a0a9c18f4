package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	eventDomain "temple-membership-backend/internal/domain/event"
	"temple-membership-backend/internal/domain/role"
	"temple-membership-backend/internal/domain/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usecase struct {
	repo  eventDomain.Repository
	roles role.Repository
}

func NewUsecase(repo eventDomain.Repository, roles role.Repository) *Usecase {
	return &Usecase{repo: repo, roles: roles}
}

type EventInput struct {
	Title             string
	Description       string
	EventDate         string // YYYY-MM-DD
	EventTime         string // HH:MM, optional
	Location          string
	ImageURL          string
	IsRecurring       bool
	RecurrencePattern string
}

func (u *Usecase) requireAdmin(ctx context.Context, p user.Principal) error {
	ok, err := u.roles.HasRole(ctx, p.UserID, role.Admin)
	if err != nil {
		return err
	}
	if !ok {
		return eventDomain.ErrAccessDenied
	}
	return nil
}

func parseInput(in EventInput) (*eventDomain.TempleEvent, error) {
	if len(strings.TrimSpace(in.Title)) < 2 {
		return nil, fmt.Errorf("%w: title must be at least 2 characters", eventDomain.ErrValidation)
	}
	date, err := time.Parse("2006-01-02", in.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event date must be YYYY-MM-DD", eventDomain.ErrValidation)
	}
	if in.EventTime != "" {
		if _, err := time.Parse("15:04", in.EventTime); err != nil {
			return nil, fmt.Errorf("%w: event time must be HH:MM", eventDomain.ErrValidation)
		}
	}
	e := &eventDomain.TempleEvent{
		Title:       in.Title,
		Description: in.Description,
		EventDate:   date,
		EventTime:   in.EventTime,
		Location:    in.Location,
		IsRecurring: in.IsRecurring,
		Status:      eventDomain.StatusPublished,
	}
	if in.ImageURL != "" {
		e.ImageURL = &in.ImageURL
	}
	if in.IsRecurring && in.RecurrencePattern != "" {
		e.RecurrencePattern = &in.RecurrencePattern
	}
	return e, nil
}

// List is the public listing: published events only, soonest first.
func (u *Usecase) List(ctx context.Context) ([]eventDomain.TempleEvent, error) {
	return u.repo.ListPublished(ctx)
}

func (u *Usecase) Create(ctx context.Context, p user.Principal, in EventInput) (*eventDomain.TempleEvent, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	e, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Update(ctx context.Context, p user.Principal, eventID string, in EventInput) (*eventDomain.TempleEvent, error) {
	if err := u.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	cur, err := u.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventDomain.ErrNotFound
		}
		return nil, err
	}
	next, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	if err := u.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (u *Usecase) Delete(ctx context.Context, p user.Principal, eventID string) error {
	if err := u.requireAdmin(ctx, p); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return eventDomain.ErrNotFound
		}
		return err
	}
	return nil
}
