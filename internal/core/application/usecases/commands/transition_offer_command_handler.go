package commands

import (
	"context"
	"fmt"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/core/domain/model/shipment"
	"yolnext/internal/pkg/errs"
)

const losingOfferNotes = "another offer was accepted"

// TransitionOfferCommandHandler decides pending offers. Accepting an offer
// triggers the full cascade: losing siblings are rejected and the shipment
// advances to offer_accepted with the winning carrier assigned, all within
// one transaction.
type TransitionOfferCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionOfferCommandHandler creates a handler for offer decisions.
func NewTransitionOfferCommandHandler(uowFactory UoWFactory) TransitionOfferCommandHandler {
	return TransitionOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer decision and returns the updated offer.
//
// Only the owner of the shipment the offer targets may decide it. The offer
// transition is recorded with the owner as actor; the shipment transition an
// acceptance causes is recorded with the system actor, since the owner never
// requests the shipment edge directly.
func (h TransitionOfferCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOfferCommand,
) (*offer.Offer, error) {
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

	o, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}

	s, err := uow.ShipmentRepository().Get(ctx, o.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !s.IsOwnedBy(cmd.Actor()) {
		return nil, errs.NewUnauthorizedError(
			cmd.Actor().ID().String(), fmt.Sprintf("decide offer %s", o.ID()))
	}

	oldStatus := o.Status().String()
	if err = o.TransitionTo(cmd.NextStatus()); err != nil {
		return nil, err
	}

	if err = uow.OfferRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	err = recordTransition(ctx, uow, kernel.SubjectOffer, o.ID(), cmd.Actor(),
		oldStatus, o.Status().String(), cmd.Notes(),
		[]kernel.UUID{o.CarrierID(), s.ShipperID()})
	if err != nil {
		return nil, err
	}

	if cmd.NextStatus() == offer.StatusAccepted {
		if err = h.applyAcceptance(ctx, uow, s, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// applyAcceptance performs the acceptance cascade: losing siblings are
// rejected, then the shipment takes the winning carrier and moves to
// offer_accepted.
func (h TransitionOfferCommandHandler) applyAcceptance(
	ctx context.Context,
	uow UoW,
	s *shipment.Shipment,
	o *offer.Offer,
) error {
	if err := closePendingOffers(ctx, uow, s, losingOfferNotes, o.ID()); err != nil {
		return err
	}

	oldStatus := s.Status().String()
	if err := s.AcceptOffer(o.CarrierID()); err != nil {
		return err
	}

	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
		return err
	}

	return recordTransition(ctx, uow, kernel.SubjectShipment, s.ID(),
		kernel.NewSystemActor(), oldStatus, s.Status().String(),
		fmt.Sprintf("offer %s accepted", o.ID()), shipmentAffectedUsers(s))
}
