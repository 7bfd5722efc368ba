package offerrepo

import (
	"context"
	"errors"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageFailureError("add offer", err)
	}

	return nil
}

// Update saves an existing offer using an optimistic version check.
// Two owners deciding the same offer concurrently resolve to one winner;
// the loser gets ConcurrentModification.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageFailureError("update offer", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OfferDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStorageFailureError("update offer", err)
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("offer", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("offer", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, errs.NewStorageFailureError("get offer", err)
	}

	return toDomain(dto)
}

// GetPendingByShipment retrieves all pending offers for a shipment.
func (r *GormOfferRepository) GetPendingByShipment(
	ctx context.Context, shipmentID kernel.UUID,
) ([]*offer.Offer, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "shipment_id = ? AND status = ?",
			shipmentID.Bytes(), offer.StatusPending.String()).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("get pending offers", err)
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
