package commands

import (
	"errors"
	"fmt"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"
	"yolnext/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a shipper's request to register a new
// shipment. The shipment starts in pending status and is immediately open
// for offers.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, shipperID, "Istanbul", "Ankara", 1200, 4500)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	shipperID   kernel.UUID
	origin      string
	destination string
	weightKg    int
	price       int64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers, addresses, weight, and price.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	shipperID kernel.UUID,
	origin string,
	destination string,
	weightKg int,
	price int64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setShipperID(shipperID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setWeightKg(weightKg),
		cmd.setPrice(price),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ShipperID returns the identifier of the owning shipper.
func (c CreateShipmentCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Origin returns the pickup address.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// WeightKg returns the cargo weight in kilograms.
func (c CreateShipmentCommand) WeightKg() int {
	return c.weightKg
}

// Price returns the shipper's asking price.
func (c CreateShipmentCommand) Price() int64 {
	return c.price
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	c.shipperID = shipperID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setWeightKg(weightKg int) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%d is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *CreateShipmentCommand) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is negative", price))
	}
	c.price = price
	return nil
}
