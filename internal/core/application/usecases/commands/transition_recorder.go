package commands

import (
	"context"

	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/notification"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/core/domain/model/shipment"
)

// transitionWriter is the slice of the unit of work that recording needs.
type transitionWriter interface {
	HistoryRepoFactory
	OutboxRepoFactory
}

// recordTransition appends the audit record and the outbox event for one
// accepted transition. Both writes join the caller's open transaction, so a
// later rollback removes them together with the state change.
func recordTransition(
	ctx context.Context,
	uow transitionWriter,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
	actor kernel.Actor,
	oldStatus string,
	newStatus string,
	notes string,
	affectedUserIDs []kernel.UUID,
) error {
	record, err := history.NewRecord(
		kernel.NewUUID(), subjectType, subjectID, actor, oldStatus, newStatus, notes)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return err
	}

	event, err := notification.NewStatusChangedEvent(
		kernel.NewUUID(), subjectType, subjectID, oldStatus, newStatus, affectedUserIDs)
	if err != nil {
		return err
	}

	return uow.OutboxRepository().Add(ctx, event)
}

// closePendingOffers rejects every pending offer of a shipment on behalf of
// the system actor, recording one transition per offer. Used when an offer
// is accepted (siblings lose) and when a shipment is cancelled. Offers whose
// IDs appear in exclude are skipped.
func closePendingOffers(
	ctx context.Context,
	uow UoW,
	s *shipment.Shipment,
	notes string,
	exclude ...kernel.UUID,
) error {
	offers, err := uow.OfferRepository().GetPendingByShipment(ctx, s.ID())
	if err != nil {
		return err
	}

	system := kernel.NewSystemActor()

	for _, o := range offers {
		if isExcluded(o, exclude) {
			continue
		}

		oldStatus := o.Status().String()
		if err = o.Reject(); err != nil {
			return err
		}

		if err = uow.OfferRepository().Update(ctx, o); err != nil {
			return err
		}

		err = recordTransition(ctx, uow, kernel.SubjectOffer, o.ID(), system,
			oldStatus, o.Status().String(), notes,
			[]kernel.UUID{o.CarrierID(), s.ShipperID()})
		if err != nil {
			return err
		}
	}

	return nil
}

func isExcluded(o *offer.Offer, exclude []kernel.UUID) bool {
	for _, id := range exclude {
		if o.ID().IsEqual(id) {
			return true
		}
	}
	return false
}

// shipmentAffectedUsers lists the parties to notify about a shipment
// transition: the owner, plus the assigned carrier once one exists.
func shipmentAffectedUsers(s *shipment.Shipment) []kernel.UUID {
	users := []kernel.UUID{s.ShipperID()}
	if carrier := s.Carrier(); carrier != nil {
		users = append(users, *carrier)
	}
	return users
}
