package commands

import (
	"errors"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/shipment"
	"yolnext/internal/pkg/guard"
)

var (
	ErrTransitionShipmentCommandIsNotConstructed = errors.New(
		"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
	)
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// status on behalf of an actor. The target status must be part of the closed
// taxonomy; whether the edge is allowed from the current status is decided by
// the aggregate inside the handler.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      kernel.Actor
	nextStatus shipment.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to transition a shipment.
// Notes are optional free text carried into the audit trail.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	actor kernel.Actor,
	nextStatus shipment.Status,
	notes string,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setNextStatus(nextStatus),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the actor requesting the transition.
func (c TransitionShipmentCommand) Actor() kernel.Actor {
	return c.actor
}

// NextStatus returns the requested target status.
func (c TransitionShipmentCommand) NextStatus() shipment.Status {
	return c.nextStatus
}

// Notes returns the optional free-text note for the audit trail.
func (c TransitionShipmentCommand) Notes() string {
	return c.notes
}

func (c *TransitionShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionShipmentCommand) setNextStatus(nextStatus shipment.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}
	c.nextStatus = nextStatus
	return nil
}
