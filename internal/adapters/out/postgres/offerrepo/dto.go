// Package offerrepo implements offer persistence over GORM, mapping the
// offer aggregate to its relational representation.
package offerrepo

import (
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
type OfferDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	CarrierID  uuid.UUID `gorm:"type:uuid;index"`
	Price      int64
	Status     string `gorm:"type:varchar(32);index"`
	Version    int
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer aggregate to its database representation.
func fromDomain(o *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:         o.ID().Bytes(),
		ShipmentID: o.ShipmentID().Bytes(),
		CarrierID:  o.CarrierID().Bytes(),
		Price:      o.Price(),
		Status:     o.Status().String(),
		Version:    o.Version(),
	}
}

// toDomain converts a database DTO to an offer aggregate via RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	status, err := offer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, shipmentID, carrierID, dto.Price, status, dto.Version)
}
