package queries

import (
	"context"
	"time"

	"yolnext/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHistoryQueryHandler reads a subject's audit trail from the database.
// The trail is append-only, so this handler is the only read surface over it.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle returns every transition recorded for the subject, oldest first.
// Ties on created_at are broken by id so the order is stable.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]GetHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			subject_type,
			subject_id,
			actor_id,
			actor_role,
			old_status,
			new_status,
			notes,
			created_at
		FROM history_records
		WHERE subject_type = ? AND subject_id = ?
		ORDER BY created_at, id
	`, query.SubjectType().String(), query.SubjectID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetHistoryQueryResponse
		var id, subjectID, actorID uuid.UUID
		var subjectType, actorRole, oldStatus, newStatus, notes string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&subjectType,
			&subjectID,
			&actorID,
			&actorRole,
			&oldStatus,
			&newStatus,
			&notes,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		subjID, idErr := kernel.UUIDFromBytes(subjectID[:])
		if idErr != nil {
			return nil, idErr
		}
		actID, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}

		record.ID = recordID
		record.SubjectType = subjectType
		record.SubjectID = subjID
		record.ActorID = actID
		record.ActorRole = actorRole
		record.OldStatus = oldStatus
		record.NewStatus = newStatus
		record.Notes = notes
		record.CreatedAt = createdAt
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
