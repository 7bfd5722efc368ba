package ports

import (
	"context"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
// Update applies the same optimistic version check as ShipmentRepository.
type OfferRepository interface {
	// Add persists a new offer aggregate to storage.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate, subject to
	// the optimistic version check.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetPendingByShipment retrieves all pending offers for a shipment.
	// Used for the cascades: closing siblings after an acceptance and
	// closing open offers when a shipment is cancelled.
	GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*offer.Offer, error)
}
