package shipment

import (
	"fmt"

	"yolnext/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a closed set of transitions so that
// shipments follow the marketplace workflow and never hold free-text states.
//
// State transitions:
//
//	pending ──> waiting_for_offers ──> offer_accepted ──> in_progress
//	                                                          │
//	     completed <── delivered <── in_transit <─────────────┘
//
// cancelled is reachable from every non-terminal state. completed and
// cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// the wire representation used for persistence, history, and the API.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created shipment.
	// The shipper has not yet published it to carriers.
	StatusPending

	// StatusWaitingForOffers means the shipment is visible to carriers
	// and open for offers.
	StatusWaitingForOffers

	// StatusOfferAccepted means the shipper accepted a carrier's offer.
	// The accepted carrier is assigned from this point onward.
	StatusOfferAccepted

	// StatusInProgress means the assigned carrier started preparing the pickup.
	StatusInProgress

	// StatusInTransit means the goods are on the way to the destination.
	StatusInTransit

	// StatusDelivered means the carrier reported the goods delivered.
	// The shipper still has to confirm completion.
	StatusDelivered

	// StatusCompleted means the shipper confirmed delivery.
	// This is a terminal state.
	StatusCompleted

	// StatusCancelled means the shipper cancelled the shipment.
	// This is a terminal state reachable from any non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusPending:          "pending",
		StatusWaitingForOffers: "waiting_for_offers",
		StatusOfferAccepted:    "offer_accepted",
		StatusInProgress:       "in_progress",
		StatusInTransit:        "in_transit",
		StatusDelivered:        "delivered",
		StatusCompleted:        "completed",
		StatusCancelled:        "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:          "pending",
		StatusWaitingForOffers: "waiting_for_offers",
		StatusOfferAccepted:    "offer_accepted",
		StatusInProgress:       "in_progress",
		StatusInTransit:        "in_transit",
		StatusDelivered:        "delivered",
		StatusCompleted:        "completed",
		StatusCancelled:        "cancelled",
	}
}

// getTransitionTable returns the directed edge set of the shipment taxonomy.
// cancelled is listed explicitly on every non-terminal state rather than
// special-cased, so the table is the single source of truth.
//
// Offers may arrive while the shipment is still pending, so acceptance can
// advance a shipment from either pending or waiting_for_offers.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:          {StatusWaitingForOffers, StatusOfferAccepted, StatusCancelled},
		StatusWaitingForOffers: {StatusOfferAccepted, StatusCancelled},
		StatusOfferAccepted:    {StatusInProgress, StatusCancelled},
		StatusInProgress:       {StatusInTransit, StatusCancelled},
		StatusInTransit:        {StatusDelivered, StatusCancelled},
		StatusDelivered:        {StatusCompleted, StatusCancelled},
		StatusCompleted:        {},
		StatusCancelled:        {},
	}
}

// StatusFromString parses the wire representation of a shipment status.
// Unknown values are rejected, never silently accepted: the taxonomy is
// closed, and variant vocabularies ("waiting", "preparing") are not aliases.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid shipment status", s))
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value, including
// invalid ones, which render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is a member of the taxonomy.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the directed edge (s, next) is in the
// taxonomy. Pure function over the transition table; unknown states on
// either side yield false.
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
