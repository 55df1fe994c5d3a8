package repository

import (
	"github.com/travelshare/travelshare-backend/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) CountByPhotoID(photoID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("photo_id = ?", photoID).Count(&count).Error
	return count, err
}
