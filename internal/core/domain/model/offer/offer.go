package offer

import (
	"errors"
	"fmt"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not
// created through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New(
	"Offer must be created via NewOffer or RestoreOffer constructor")

// Offer is the aggregate root for a carrier's bid on a shipment.
// An offer is created pending and is decided exactly once: accepted or
// rejected, both terminal.
type Offer struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	carrierID  kernel.UUID
	price      int64
	status     Status

	// version supports the optimistic concurrency check in persistence
	version int

	isConstructed bool
}

// NewOffer creates a new pending Offer with validation.
func NewOffer(id, shipmentID, carrierID kernel.UUID, price int64) (*Offer, error) {
	o := &Offer{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipmentID(shipmentID),
		o.setCarrierID(carrierID),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an offer from persistence.
func RestoreOffer(id, shipmentID, carrierID kernel.UUID, price int64, status Status, version int) (*Offer, error) {
	o := &Offer{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipmentID(shipmentID),
		o.setCarrierID(carrierID),
		o.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", version))
	}

	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Offer was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// ShipmentID returns the identifier of the shipment the offer bids on.
func (o *Offer) ShipmentID() kernel.UUID {
	return o.shipmentID
}

// CarrierID returns the identifier of the carrier that submitted the offer.
func (o *Offer) CarrierID() kernel.UUID {
	return o.carrierID
}

// Price returns the carrier's bid price.
func (o *Offer) Price() int64 {
	return o.price
}

// Status returns the current status of the offer.
func (o *Offer) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency version read from persistence.
func (o *Offer) Version() int {
	return o.version
}

// IsPending reports whether the offer is still awaiting a decision.
func (o *Offer) IsPending() bool {
	return o.status == StatusPending
}

// Accept marks the offer as accepted by the shipment owner.
// Only a pending offer can be accepted.
func (o *Offer) Accept() error {
	return o.transitionTo(StatusAccepted)
}

// Reject marks the offer as rejected, either by an explicit owner decision
// or implicitly when a sibling offer wins or the shipment is cancelled.
func (o *Offer) Reject() error {
	return o.transitionTo(StatusRejected)
}

// TransitionTo moves the offer to the requested status, enforcing the
// single-decision rule.
func (o *Offer) TransitionTo(next Status) error {
	return o.transitionTo(next)
}

func (o *Offer) transitionTo(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError(
			kernel.SubjectOffer.String(), o.status.String(), next.String())
	}

	o.status = next
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	o.shipmentID = shipmentID
	return nil
}

func (o *Offer) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	o.carrierID = carrierID
	return nil
}

func (o *Offer) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}
