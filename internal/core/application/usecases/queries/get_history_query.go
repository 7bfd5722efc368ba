package queries

import (
	"errors"
	"time"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
)

// GetHistoryQuery retrieves the full transition history of one subject,
// either a shipment or an offer, oldest entry first.
//
// Example:
//
//	query, err := NewGetHistoryQuery(kernel.SubjectShipment, shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetHistoryQueryHandler(db)
//	records, err := handler.Handle(ctx, query)
type GetHistoryQuery struct { //nolint:recvcheck //using for validation
	subjectType kernel.SubjectType
	subjectID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a query for a subject's transition history.
func NewGetHistoryQuery(
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
) (GetHistoryQuery, error) {
	q := GetHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSubjectType(subjectType),
		q.setSubjectID(subjectID),
	); err != nil {
		return GetHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// SubjectType returns the kind of subject the history belongs to.
func (q GetHistoryQuery) SubjectType() kernel.SubjectType {
	return q.subjectType
}

// SubjectID returns the identifier of the subject.
func (q GetHistoryQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

func (q *GetHistoryQuery) setSubjectType(subjectType kernel.SubjectType) error {
	if err := subjectType.Validate(); err != nil {
		return err
	}
	q.subjectType = subjectType
	return nil
}

func (q *GetHistoryQuery) setSubjectID(subjectID kernel.UUID) error {
	if err := subjectID.Validate(); err != nil {
		return err
	}
	q.subjectID = subjectID
	return nil
}

// GetHistoryQueryResponse represents one immutable audit trail entry.
type GetHistoryQueryResponse struct {
	ID          kernel.UUID
	SubjectType string
	SubjectID   kernel.UUID
	ActorID     kernel.UUID
	ActorRole   string
	OldStatus   string
	NewStatus   string
	Notes       string
	CreatedAt   time.Time
}
