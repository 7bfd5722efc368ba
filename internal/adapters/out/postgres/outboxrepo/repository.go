package outboxrepo

import (
	"context"
	"time"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/notification"
	"yolnext/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends one unpublished event to the outbox.
func (r *GormOutboxRepository) Add(ctx context.Context, event *notification.StatusChangedEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageFailureError("add outbox event", err)
	}

	return nil
}

// GetUnpublished retrieves up to limit unpublished events, oldest first.
func (r *GormOutboxRepository) GetUnpublished(
	ctx context.Context, limit int,
) ([]*notification.StatusChangedEvent, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("get unpublished events", err)
	}

	events := make([]*notification.StatusChangedEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkPublished stamps an event as handed to the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published_at", &now)
	if result.Error != nil {
		return errs.NewStorageFailureError("mark event published", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox event", id.String())
	}

	return nil
}
