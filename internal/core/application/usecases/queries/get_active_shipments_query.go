package queries

import (
	"errors"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/guard"
)

var (
	ErrGetActiveShipmentsQueryIsNotConstructed = errors.New(
		"GetActiveShipmentsQuery must be created via NewGetActiveShipmentsQuery constructor",
	)
)

// GetActiveShipmentsQuery retrieves all shipments that have not reached a
// terminal status. Used by the marketplace board and operator dashboards.
type GetActiveShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShipmentsQuery creates a query to retrieve active shipments.
// This is a parameterless query that fetches all non-terminal shipments.
func NewGetActiveShipmentsQuery() GetActiveShipmentsQuery {
	return GetActiveShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentsQueryIsNotConstructed)
}

// GetActiveShipmentsQueryResponse represents one active shipment.
// CarrierID is nil until an offer has been accepted.
type GetActiveShipmentsQueryResponse struct {
	ID          kernel.UUID
	ShipperID   kernel.UUID
	CarrierID   *kernel.UUID
	Status      string
	Origin      string
	Destination string
	WeightKg    int
	Price       int64
}
