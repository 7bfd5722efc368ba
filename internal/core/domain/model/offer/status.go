package offer

import (
	"fmt"

	"yolnext/internal/pkg/errs"
)

// Status represents the lifecycle state of an offer.
//
// State transitions:
//
//	pending ──┬──> accepted
//	          └──> rejected
//
// Both accepted and rejected are terminal: an offer is decided exactly once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly submitted offer.
	StatusPending

	// StatusAccepted means the shipment owner accepted this offer.
	// Terminal; at most one offer per shipment ever reaches it.
	StatusAccepted

	// StatusRejected means the offer was declined, either explicitly by the
	// owner or implicitly when a sibling offer was accepted or the shipment
	// was cancelled. Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

// StatusFromString parses the wire representation of an offer status.
// Unknown values are rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid offer status", s))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is a member of the taxonomy.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether the directed edge (s, next) is in the
// offer taxonomy. Only pending offers can move, and only to a terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	return s == StatusPending && (next == StatusAccepted || next == StatusRejected)
}
