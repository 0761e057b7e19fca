package repo

import (
	"gateway-portal/app/models"

	"gorm.io/gorm"
)

type ExportRepository struct{ db *gorm.DB }

func NewExportRepository(db *gorm.DB) *ExportRepository { return &ExportRepository{db: db} }

func (r *ExportRepository) Recent(limit int) ([]models.ExportPda, error) {
	rows := make([]models.ExportPda, 0, limit)
	err := r.db.Order("insert_time DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type ImportErrorRepository struct{ db *gorm.DB }

func NewImportErrorRepository(db *gorm.DB) *ImportErrorRepository {
	return &ImportErrorRepository{db: db}
}

func (r *ImportErrorRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.ImportError{}).Count(&n).Error
	return n, err
}
