package repositories

import (
	"context"
	"fmt"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"gorm.io/gorm"
)

type EventRepository interface {
	// FetchEvents reads the raw event export in stable order: timestamp
	// first, insertion id as tie-break, so reruns over the same warehouse
	// snapshot see identical input.
	FetchEvents(ctx context.Context) ([]entities.RawEvent, error)
	CountEvents(ctx context.Context) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db}
}

func (r *eventRepository) FetchEvents(ctx context.Context) ([]entities.RawEvent, error) {
	var events []entities.RawEvent
	err := r.db.WithContext(ctx).
		Order("event_timestamp asc, id asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) CountEvents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.RawEvent{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count raw events: %w", err)
	}
	return total, nil
}
