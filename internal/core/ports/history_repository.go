package ports

import (
	"context"

	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// audit trail. The interface deliberately has no update or delete: records
// are written exactly once per accepted transition and never mutated.
type HistoryRepository interface {
	// Add appends one status-change record.
	Add(ctx context.Context, record *history.Record) error

	// GetBySubject retrieves the ordered history of a subject, oldest first.
	// Repeated reads without intervening transitions yield identical results.
	GetBySubject(ctx context.Context, subjectType kernel.SubjectType, subjectID kernel.UUID) ([]*history.Record, error)
}
