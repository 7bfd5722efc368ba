package shipment

import (
	"errors"
	"fmt"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")

	// ErrCarrierAssignmentInconsistent is returned when a restored shipment's
	// carrier assignment contradicts its status.
	ErrCarrierAssignmentInconsistent = errors.New(
		"carrier assignment is inconsistent with shipment status")
)

// Shipment is the aggregate root for a shipper's request to move goods.
// It owns the current status field and enforces the taxonomy plus the
// carrier-assignment invariant: a carrier is assigned if and only if the
// status has reached offer_accepted.
//
// Shipment follows these invariants:
//   - Must have valid shipment and shipper identifiers
//   - Origin and destination must be non-empty
//   - Weight must be positive
//   - Status transitions follow the closed taxonomy
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id        kernel.UUID
	shipperID kernel.UUID

	// carrierID is the accepted carrier (nil until an offer is accepted)
	carrierID *kernel.UUID

	status Status

	// logistics fields, not part of the state machine
	origin      string
	destination string
	weightKg    int
	price       int64

	// version supports the optimistic concurrency check in persistence
	version int

	isConstructed bool
}

// NewShipment creates a new Shipment in pending status with validation.
// This is the only way to create a shipment that has never been persisted.
//
// Example:
//
//	id := kernel.NewUUID()
//	s, err := shipment.NewShipment(id, shipperID, "Istanbul", "Ankara", 1200, 4500)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(
	id kernel.UUID,
	shipperID kernel.UUID,
	origin string,
	destination string,
	weightKg int,
	price int64,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipperID(shipperID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setWeightKg(weightKg),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// Unlike NewShipment it accepts an arbitrary valid status and carrier
// assignment, but still rejects combinations that violate the
// carrier-assignment invariant.
func RestoreShipment(
	id kernel.UUID,
	shipperID kernel.UUID,
	carrierID *kernel.UUID,
	status Status,
	origin string,
	destination string,
	weightKg int,
	price int64,
	version int,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipperID(shipperID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setWeightKg(weightKg),
		s.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCarrier(carrierID != nil); err != nil {
		return nil, err
	}

	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", version))
	}

	s.status = status
	s.carrierID = carrierID
	s.version = version
	return s, nil
}

// ValidateCanHaveCarrier validates consistency between status and carrier
// assignment. Statuses past offer_accepted require a carrier, statuses before
// it forbid one. A cancelled shipment may keep the carrier it had when it was
// cancelled, so both forms are allowed there.
func (s Status) ValidateCanHaveCarrier(hasCarrier bool) error {
	switch s {
	case StatusPending, StatusWaitingForOffers:
		if hasCarrier {
			return errs.NewValueIsInvalidErrorWithCause("carrier",
				fmt.Errorf("%s: %s shipment must not have a carrier", ErrCarrierAssignmentInconsistent, s))
		}
	case StatusOfferAccepted, StatusInProgress, StatusInTransit, StatusDelivered, StatusCompleted:
		if !hasCarrier {
			return errs.NewValueIsInvalidErrorWithCause("carrier",
				fmt.Errorf("%s: %s shipment must have a carrier", ErrCarrierAssignmentInconsistent, s))
		}
	case StatusCancelled:
		// either form is valid
	default:
		return s.Validate()
	}

	return nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ShipperID returns the identifier of the shipment owner.
func (s *Shipment) ShipperID() kernel.UUID {
	return s.shipperID
}

// Carrier returns the assigned carrier's ID, or nil before an offer is accepted.
func (s *Shipment) Carrier() *kernel.UUID {
	return s.carrierID
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Origin returns the pickup address.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the delivery address.
func (s *Shipment) Destination() string {
	return s.destination
}

// WeightKg returns the cargo weight in kilograms.
func (s *Shipment) WeightKg() int {
	return s.weightKg
}

// Price returns the shipper's asking price.
func (s *Shipment) Price() int64 {
	return s.price
}

// Version returns the optimistic concurrency version read from persistence.
func (s *Shipment) Version() int {
	return s.version
}

// AuthorizeTransition checks whether the actor may drive the shipment to the
// requested status. The matrix:
//
//   - pending → waiting_for_offers: shipment owner
//   - waiting_for_offers → offer_accepted: system only, via offer acceptance
//   - offer_accepted → in_progress → in_transit → delivered: assigned carrier
//   - delivered → completed: shipment owner
//   - any → cancelled: shipment owner
//
// Authorization is checked independently of the taxonomy: an actor that is
// not allowed to request the edge gets Unauthorized even when the edge
// itself would be invalid too.
func (s *Shipment) AuthorizeTransition(actor kernel.Actor, next Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch next {
	case StatusWaitingForOffers, StatusCompleted, StatusCancelled:
		if !s.IsOwnedBy(actor) {
			return errs.NewUnauthorizedError(
				actor.ID().String(), fmt.Sprintf("move shipment %s to %s", s.id, next))
		}
	case StatusOfferAccepted:
		if !actor.IsSystem() {
			return errs.NewUnauthorizedError(
				actor.ID().String(), "move shipment to offer_accepted directly; accept an offer instead")
		}
	case StatusInProgress, StatusInTransit, StatusDelivered:
		if !s.IsAssignedTo(actor) {
			return errs.NewUnauthorizedError(
				actor.ID().String(), fmt.Sprintf("move shipment %s to %s", s.id, next))
		}
	default:
		return errs.NewUnauthorizedError(
			actor.ID().String(), fmt.Sprintf("move shipment %s to %s", s.id, next))
	}

	return nil
}

// IsOwnedBy reports whether the actor is the shipper that owns this shipment.
func (s *Shipment) IsOwnedBy(actor kernel.Actor) bool {
	return actor.Role() == kernel.RoleShipper && actor.ID().IsEqual(s.shipperID)
}

// IsAssignedTo reports whether the actor is the carrier assigned to this shipment.
func (s *Shipment) IsAssignedTo(actor kernel.Actor) bool {
	return actor.Role() == kernel.RoleCarrier &&
		s.carrierID != nil &&
		actor.ID().IsEqual(*s.carrierID)
}

// TransitionTo moves the shipment to the requested status.
//
// The edge must be in the taxonomy, otherwise an InvalidTransitionError is
// returned and the shipment is left unchanged. offer_accepted cannot be
// entered through this method because it requires a carrier assignment; use
// AcceptOffer for that edge.
func (s *Shipment) TransitionTo(next Status) error {
	if !s.status.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError(
			kernel.SubjectShipment.String(), s.status.String(), next.String())
	}

	if next == StatusOfferAccepted {
		return errs.NewInvalidTransitionErrorWithCause(
			kernel.SubjectShipment.String(), s.status.String(), next.String(),
			errors.New("offer_accepted requires a carrier; use AcceptOffer"))
	}

	s.status = next
	return nil
}

// AcceptOffer assigns the winning carrier and advances the shipment to
// offer_accepted. This is the only way the offer_accepted status can be
// entered, which keeps the carrier-assignment invariant intact.
func (s *Shipment) AcceptOffer(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	if !s.status.CanTransitionTo(StatusOfferAccepted) {
		return errs.NewInvalidTransitionError(
			kernel.SubjectShipment.String(), s.status.String(), StatusOfferAccepted.String())
	}

	s.status = StatusOfferAccepted
	s.carrierID = &carrierID
	return nil
}

// IsOpenForOffers reports whether carriers may currently submit offers.
// A shipment accepts offers as soon as it is created; publishing to
// waiting_for_offers only advertises it more widely.
func (s *Shipment) IsOpenForOffers() bool {
	return s.status == StatusPending || s.status == StatusWaitingForOffers
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	s.shipperID = shipperID
	return nil
}

func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setWeightKg(weightKg int) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%d is not greater than 0", weightKg))
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is negative", price))
	}
	s.price = price
	return nil
}
