// Package outboxrepo implements the transactional outbox persistence.
// Events land here in the same transaction as the transition they describe
// and are drained to the broker by a background job.
package outboxrepo

import (
	"time"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventDTO represents the database structure for persisting outbox events.
// Affected user IDs are stored as a native text[] column; PublishedAt is nil
// until the dispatch job hands the event to the broker.
type EventDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SubjectType     string         `gorm:"type:varchar(32)"`
	SubjectID       uuid.UUID      `gorm:"type:uuid"`
	OldStatus       string         `gorm:"type:varchar(32)"`
	NewStatus       string         `gorm:"type:varchar(32)"`
	AffectedUserIDs pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time
	PublishedAt     *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (EventDTO) TableName() string {
	return "outbox_events"
}

// fromDomain converts a status-changed event to its database representation.
func fromDomain(e *notification.StatusChangedEvent) EventDTO {
	userIDs := make(pq.StringArray, 0, len(e.AffectedUserIDs()))
	for _, id := range e.AffectedUserIDs() {
		userIDs = append(userIDs, id.String())
	}

	return EventDTO{
		ID:              e.ID().Bytes(),
		SubjectType:     e.SubjectType().String(),
		SubjectID:       e.SubjectID().Bytes(),
		OldStatus:       e.OldStatus(),
		NewStatus:       e.NewStatus(),
		AffectedUserIDs: userIDs,
		CreatedAt:       e.CreatedAt(),
	}
}

// toDomain converts a database DTO to a status-changed event.
func toDomain(dto EventDTO) (*notification.StatusChangedEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}

	subjectType, err := kernel.SubjectTypeFromString(dto.SubjectType)
	if err != nil {
		return nil, err
	}

	userIDs := make([]kernel.UUID, 0, len(dto.AffectedUserIDs))
	for _, raw := range dto.AffectedUserIDs {
		userID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		userIDs = append(userIDs, userID)
	}

	return notification.RestoreStatusChangedEvent(
		id, subjectType, subjectID, dto.OldStatus, dto.NewStatus, userIDs, dto.CreatedAt)
}
