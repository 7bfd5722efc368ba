// Package shipmentrepo implements shipment persistence over GORM, mapping
// the shipment aggregate to its relational representation.
package shipmentrepo

import (
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status is stored as its wire string so the table reads
// naturally and survives reordering of the Go enum.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipperID   uuid.UUID  `gorm:"type:uuid;index"`
	CarrierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(32);index"`
	Origin      string
	Destination string
	WeightKg    int
	Price       int64
	Version     int
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var carrierID *uuid.UUID
	if id := s.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		ShipperID:   s.ShipperID().Bytes(),
		CarrierID:   carrierID,
		Status:      s.Status().String(),
		Origin:      s.Origin(),
		Destination: s.Destination(),
		WeightKg:    s.WeightKg(),
		Price:       s.Price(),
		Version:     s.Version(),
	}
}

// toDomain converts a database DTO to a shipment aggregate via RestoreShipment,
// which re-validates the carrier-assignment invariant.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, shipperID, carrierID, status,
		dto.Origin, dto.Destination, dto.WeightKg, dto.Price, dto.Version)
}
