// Package notification provides the typed event emitted for every accepted
// transition. The workflow's contract ends at event emission: delivery,
// retries, and channel selection belong to the external notification service
// consuming these events.
package notification

import (
	"errors"
	"time"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when a StatusChangedEvent was not
// created through NewStatusChangedEvent or RestoreStatusChangedEvent.
var ErrEventIsNotConstructed = errors.New(
	"StatusChangedEvent must be created via NewStatusChangedEvent or RestoreStatusChangedEvent constructor")

// StatusChangedEvent describes one accepted transition to external consumers.
// The affected users are the parties a notification service should fan out
// to: the shipper and any carriers involved in the transition.
type StatusChangedEvent struct {
	id              kernel.UUID
	subjectType     kernel.SubjectType
	subjectID       kernel.UUID
	oldStatus       string
	newStatus       string
	affectedUserIDs []kernel.UUID
	createdAt       time.Time

	isConstructed bool
}

// NewStatusChangedEvent creates an event for a transition being committed now.
func NewStatusChangedEvent(
	id kernel.UUID,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
	oldStatus string,
	newStatus string,
	affectedUserIDs []kernel.UUID,
) (*StatusChangedEvent, error) {
	return RestoreStatusChangedEvent(
		id, subjectType, subjectID, oldStatus, newStatus, affectedUserIDs, time.Now().UTC())
}

// RestoreStatusChangedEvent reconstructs an event from the outbox.
func RestoreStatusChangedEvent(
	id kernel.UUID,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
	oldStatus string,
	newStatus string,
	affectedUserIDs []kernel.UUID,
	createdAt time.Time,
) (*StatusChangedEvent, error) {
	if err := errors.Join(
		id.Validate(),
		subjectType.Validate(),
		subjectID.Validate(),
	); err != nil {
		return nil, err
	}

	if oldStatus == "" {
		return nil, errs.NewValueIsRequiredError("oldStatus")
	}
	if newStatus == "" {
		return nil, errs.NewValueIsRequiredError("newStatus")
	}
	if len(affectedUserIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("affectedUserIDs")
	}
	for _, userID := range affectedUserIDs {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}

	users := make([]kernel.UUID, len(affectedUserIDs))
	copy(users, affectedUserIDs)

	return &StatusChangedEvent{
		id:              id,
		subjectType:     subjectType,
		subjectID:       subjectID,
		oldStatus:       oldStatus,
		newStatus:       newStatus,
		affectedUserIDs: users,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the event was properly constructed.
func (e *StatusChangedEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *StatusChangedEvent) ID() kernel.UUID {
	return e.id
}

// SubjectType returns whether the event is about a shipment or an offer.
func (e *StatusChangedEvent) SubjectType() kernel.SubjectType {
	return e.subjectType
}

// SubjectID returns the identifier of the subject.
func (e *StatusChangedEvent) SubjectID() kernel.UUID {
	return e.subjectID
}

// OldStatus returns the wire string of the pre-transition status.
func (e *StatusChangedEvent) OldStatus() string {
	return e.oldStatus
}

// NewStatus returns the wire string of the post-transition status.
func (e *StatusChangedEvent) NewStatus() string {
	return e.newStatus
}

// AffectedUserIDs returns the users a notification service should fan out to.
func (e *StatusChangedEvent) AffectedUserIDs() []kernel.UUID {
	users := make([]kernel.UUID, len(e.affectedUserIDs))
	copy(users, e.affectedUserIDs)
	return users
}

// CreatedAt returns when the transition was committed.
func (e *StatusChangedEvent) CreatedAt() time.Time {
	return e.createdAt
}
