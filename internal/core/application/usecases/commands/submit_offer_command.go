package commands

import (
	"errors"
	"fmt"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
	"yolnext/internal/pkg/guard"
)

var (
	ErrSubmitOfferCommandIsNotConstructed = errors.New(
		"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
	)
)

// SubmitOfferCommand represents a carrier's bid on a shipment.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	offerID    kernel.UUID
	shipmentID kernel.UUID
	carrierID  kernel.UUID
	price      int64

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command to submit a carrier offer.
// Validates identifiers and requires a positive price.
func NewSubmitOfferCommand(
	offerID kernel.UUID,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	price int64,
) (SubmitOfferCommand, error) {
	cmd := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setShipmentID(shipmentID),
		cmd.setCarrierID(carrierID),
		cmd.setPrice(price),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// OfferID returns the unique identifier for the new offer.
func (c SubmitOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ShipmentID returns the identifier of the shipment being bid on.
func (c SubmitOfferCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CarrierID returns the identifier of the bidding carrier.
func (c SubmitOfferCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Price returns the carrier's bid price.
func (c SubmitOfferCommand) Price() int64 {
	return c.price
}

func (c *SubmitOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	c.offerID = offerID
	return nil
}

func (c *SubmitOfferCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *SubmitOfferCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}

func (c *SubmitOfferCommand) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is not greater than 0", price))
	}
	c.price = price
	return nil
}
