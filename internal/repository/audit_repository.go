package repository

import (
	"hr_console/internal/model"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Create(entry *model.AuditEntry) error {
	return r.DB.Create(entry).Error
}

// List pages the trail newest first; operatorID 0 lists every operator.
func (r *AuditRepository) List(operatorID uint, page, limit int) ([]model.AuditEntry, int64, error) {
	var (
		entries []model.AuditEntry
		total   int64
	)
	query := r.DB.Model(&model.AuditEntry{})
	if operatorID > 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}
