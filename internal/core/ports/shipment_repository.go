// Package ports defines repository and unit-of-work interfaces for the
// status workflow. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
//
// Update performs an optimistic version check: the row is only written when
// its stored version matches the version the aggregate was read with, and
// the stored version is bumped on success. A lost race surfaces as
// errs.ErrConcurrentModification rather than a silent overwrite.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, subject to
	// the optimistic version check described above.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllActive retrieves shipments that are not in a terminal status.
	GetAllActive(ctx context.Context) ([]*shipment.Shipment, error)
}
