package commands

import (
	"context"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/shipment"
)

const cancelledOfferNotes = "shipment was cancelled"

// TransitionShipmentCommandHandler drives a shipment through the status
// taxonomy. Every accepted transition is persisted together with its audit
// record and outbox event in one transaction: either all of them land or
// none do.
type TransitionShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for shipment transitions.
func NewTransitionShipmentCommandHandler(uowFactory UoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the updated shipment.
//
// Order of checks matters: authorization runs before the taxonomy check, so a
// caller who may not request the edge gets Unauthorized even when the edge is
// also invalid. Cancelling a shipment additionally rejects all of its pending
// offers as a cascade within the same transaction.
func (h TransitionShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.AuthorizeTransition(cmd.Actor(), cmd.NextStatus()); err != nil {
		return nil, err
	}

	oldStatus := s.Status().String()
	if err = s.TransitionTo(cmd.NextStatus()); err != nil {
		return nil, err
	}

	if cmd.NextStatus() == shipment.StatusCancelled {
		if err = closePendingOffers(ctx, uow, s, cancelledOfferNotes); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}

	err = recordTransition(ctx, uow, kernel.SubjectShipment, s.ID(), cmd.Actor(),
		oldStatus, s.Status().String(), cmd.Notes(), shipmentAffectedUsers(s))
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
