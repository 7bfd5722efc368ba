package commands

import (
	"errors"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/pkg/guard"
)

var (
	ErrTransitionOfferCommandIsNotConstructed = errors.New(
		"TransitionOfferCommand must be created via NewTransitionOfferCommand constructor",
	)
)

// TransitionOfferCommand represents the shipment owner's decision on a
// pending offer: accept it or reject it.
type TransitionOfferCommand struct { //nolint:recvcheck //using for validation
	offerID    kernel.UUID
	actor      kernel.Actor
	nextStatus offer.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewTransitionOfferCommand creates a command to decide a pending offer.
// Notes are optional free text carried into the audit trail.
func NewTransitionOfferCommand(
	offerID kernel.UUID,
	actor kernel.Actor,
	nextStatus offer.Status,
	notes string,
) (TransitionOfferCommand, error) {
	cmd := TransitionOfferCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setActor(actor),
		cmd.setNextStatus(nextStatus),
	); err != nil {
		return TransitionOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOfferCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOfferCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer to decide.
func (c TransitionOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Actor returns the actor deciding the offer.
func (c TransitionOfferCommand) Actor() kernel.Actor {
	return c.actor
}

// NextStatus returns the requested decision.
func (c TransitionOfferCommand) NextStatus() offer.Status {
	return c.nextStatus
}

// Notes returns the optional free-text note for the audit trail.
func (c TransitionOfferCommand) Notes() string {
	return c.notes
}

func (c *TransitionOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	c.offerID = offerID
	return nil
}

func (c *TransitionOfferCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionOfferCommand) setNextStatus(nextStatus offer.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}
	c.nextStatus = nextStatus
	return nil
}
