package commands

import (
	"context"
	"errors"

	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/pkg/errs"
)

// ErrShipmentNotOpenForOffers is returned when a carrier bids on a shipment
// that has already advanced past the offer stage or was cancelled.
var ErrShipmentNotOpenForOffers = errors.New("shipment is not open for offers")

// SubmitOfferCommandHandler handles carrier offer submission.
// Verifies the target shipment exists and still accepts offers before
// persisting the new pending offer.
type SubmitOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewSubmitOfferCommandHandler creates a handler for offer submission.
func NewSubmitOfferCommandHandler(uowFactory OfferUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer submission command and returns the created offer.
//
// Rules enforced here:
//   - the shipment must exist (NotFound otherwise)
//   - the shipment must still be open for offers
//   - a shipper cannot bid on their own shipment
func (h SubmitOfferCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOfferCommand,
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

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !s.IsOpenForOffers() {
		return nil, ErrShipmentNotOpenForOffers
	}

	if cmd.CarrierID().IsEqual(s.ShipperID()) {
		return nil, errs.NewUnauthorizedError(
			cmd.CarrierID().String(), "submit an offer on their own shipment")
	}

	o, err := offer.NewOffer(cmd.OfferID(), cmd.ShipmentID(), cmd.CarrierID(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.OfferRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
