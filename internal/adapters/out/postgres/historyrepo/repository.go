package historyrepo

import (
	"context"

	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends one audit record. Records are immutable once written.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageFailureError("add history record", err)
	}

	return nil
}

// GetBySubject retrieves every record of one subject, oldest first.
// Ties on created_at are broken by id so the order is stable.
func (r *GormHistoryRepository) GetBySubject(
	ctx context.Context,
	subjectType kernel.SubjectType,
	subjectID kernel.UUID,
) ([]*history.Record, error) {
	if err := subjectType.Validate(); err != nil {
		return nil, err
	}
	if err := subjectID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType.String(), subjectID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("get history records", err)
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
