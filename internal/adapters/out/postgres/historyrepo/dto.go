// Package historyrepo implements the append-only audit trail persistence.
// Records are inserted exactly once and never updated or deleted; the
// repository deliberately exposes no write operation besides Add.
package historyrepo

import (
	"time"

	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting audit records.
// The composite index supports the one read path: all records of a subject
// in chronological order.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectType string    `gorm:"type:varchar(32);index:idx_history_subject"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index:idx_history_subject"`
	ActorID     uuid.UUID `gorm:"type:uuid"`
	ActorRole   string    `gorm:"type:varchar(32)"`
	OldStatus   string    `gorm:"type:varchar(32)"`
	NewStatus   string    `gorm:"type:varchar(32)"`
	Notes       string
	CreatedAt   time.Time
}

// TableName specifies the database table name for history records.
func (RecordDTO) TableName() string {
	return "history_records"
}

// fromDomain converts a record value object to its database representation.
func fromDomain(r *history.Record) RecordDTO {
	return RecordDTO{
		ID:          r.ID().Bytes(),
		SubjectType: r.SubjectType().String(),
		SubjectID:   r.SubjectID().Bytes(),
		ActorID:     r.ActorID().Bytes(),
		ActorRole:   r.ActorRole().String(),
		OldStatus:   r.OldStatus(),
		NewStatus:   r.NewStatus(),
		Notes:       r.Notes(),
		CreatedAt:   r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a record via RestoreRecord.
func toDomain(dto RecordDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	subjectType, err := kernel.SubjectTypeFromString(dto.SubjectType)
	if err != nil {
		return nil, err
	}

	actorRole, err := kernel.RoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(
		id, subjectType, subjectID, actorID, actorRole,
		dto.OldStatus, dto.NewStatus, dto.Notes, dto.CreatedAt)
}
