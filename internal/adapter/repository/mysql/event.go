package mysql

import (
	"context"

	eventDomain "temple-membership-backend/internal/domain/event"

	"gorm.io/gorm"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Create(ctx context.Context, e *eventDomain.TempleEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) Save(ctx context.Context, e *eventDomain.TempleEvent) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", eventID).Delete(&eventDomain.TempleEvent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*eventDomain.TempleEvent, error) {
	var out eventDomain.TempleEvent
	res := r.db.WithContext(ctx).Where("id = ?", eventID).First(&out)
	return &out, res.Error
}

func (r *EventRepository) ListPublished(ctx context.Context) ([]eventDomain.TempleEvent, error) {
	var out []eventDomain.TempleEvent
	res := r.db.WithContext(ctx).
		Where("status = ?", eventDomain.StatusPublished).
		Order("event_date ASC, event_time ASC").
		Find(&out)
	return out, res.Error
}
