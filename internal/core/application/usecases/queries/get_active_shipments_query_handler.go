package queries

import (
	"context"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves shipments still moving through the
// workflow, excluding completed and cancelled ones.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal shipments.
// Results are sorted by shipment ID for consistent output.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper_id,
			carrier_id,
			status,
			origin,
			destination,
			weight_kg,
			price
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, shipment.StatusCompleted.String(), shipment.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveShipmentsQueryResponse
		var id, shipperID uuid.UUID
		var carrierID *uuid.UUID
		var status, origin, destination string
		var weightKg int
		var price int64

		err = rows.Scan(
			&id,
			&shipperID,
			&carrierID,
			&status,
			&origin,
			&destination,
			&weightKg,
			&price,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(shipperID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = shipmentID
		resp.ShipperID = ownerID
		if carrierID != nil {
			assignedID, idErr := kernel.UUIDFromBytes(carrierID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CarrierID = &assignedID
		}
		resp.Status = status
		resp.Origin = origin
		resp.Destination = destination
		resp.WeightKg = weightKg
		resp.Price = price
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
