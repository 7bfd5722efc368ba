// Package history provides the StatusChangeRecord value object: one immutable
// audit-trail entry per accepted transition. Records reference their subject
// by (type, id) pairs — a weak reference, never authoritative for current
// state — and are append-only: they are created exactly once and never
// mutated or deleted.
package history

import (
	"errors"
	"time"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New(
	"Record must be created via NewRecord or RestoreRecord constructor")

// Record is one immutable status-change entry for a shipment or offer.
// It captures who changed what, from which state to which state, and when.
type Record struct {
	id          kernel.UUID
	subjectType kernel.SubjectType
	subjectID   kernel.UUID
	actorID     kernel.UUID
	actorRole   kernel.Role
	oldStatus   string
	newStatus   string
	notes       string
	createdAt   time.Time

	isConstructed bool
}

// NewRecord creates a record for a transition that is being committed now.
// Old and new statuses are stored as their wire strings so one record type
// covers both subject taxonomies.
func NewRecord(
	id kernel.UUID,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
	actor kernel.Actor,
	oldStatus string,
	newStatus string,
	notes string,
) (*Record, error) {
	return RestoreRecord(id, subjectType, subjectID, actor.ID(), actor.Role(),
		oldStatus, newStatus, notes, time.Now().UTC())
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(
	id kernel.UUID,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
	actorID kernel.UUID,
	actorRole kernel.Role,
	oldStatus string,
	newStatus string,
	notes string,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		subjectType.Validate(),
		subjectID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return nil, err
	}

	if oldStatus == "" {
		return nil, errs.NewValueIsRequiredError("oldStatus")
	}
	if newStatus == "" {
		return nil, errs.NewValueIsRequiredError("newStatus")
	}

	return &Record{
		id:            id,
		subjectType:   subjectType,
		subjectID:     subjectID,
		actorID:       actorID,
		actorRole:     actorRole,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// SubjectType returns whether the record is about a shipment or an offer.
func (r *Record) SubjectType() kernel.SubjectType {
	return r.subjectType
}

// SubjectID returns the identifier of the subject.
func (r *Record) SubjectID() kernel.UUID {
	return r.subjectID
}

// ActorID returns the identifier of the user that drove the transition.
func (r *Record) ActorID() kernel.UUID {
	return r.actorID
}

// ActorRole returns the role the actor held.
func (r *Record) ActorRole() kernel.Role {
	return r.actorRole
}

// OldStatus returns the wire string of the pre-transition status.
func (r *Record) OldStatus() string {
	return r.oldStatus
}

// NewStatus returns the wire string of the post-transition status.
func (r *Record) NewStatus() string {
	return r.newStatus
}

// Notes returns the free-text notes supplied with the transition.
func (r *Record) Notes() string {
	return r.notes
}

// CreatedAt returns when the transition was recorded.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}
