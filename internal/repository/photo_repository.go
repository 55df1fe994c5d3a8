package repository

import (
	"encoding/json"
	"time"

	"github.com/travelshare/travelshare-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) GetPublic(limit int) ([]models.Photo, error) {
	var photos []models.Photo
	tx := r.db.Where("is_public = ?", true)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) GetByType(photoType string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("photo_type = ? AND is_public = ?", photoType, true).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) GetByAuthor(authorID string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("author_id = ?", authorID).Find(&photos).Error
	return photos, err
}

// GetBySharedGroup uses the store's native JSON containment query instead
// of filtering client-side.
func (r *PhotoRepository) GetBySharedGroup(groupID string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.
		Where("jsonb_exists(shared_with_group_ids::jsonb, ?)", groupID).
		Find(&photos).Error
	return photos, err
}

// IncrementLikes applies an atomic counter increment and records the last
// liker, without a client-side read-modify-write.
func (r *PhotoRepository) IncrementLikes(photoID, likerID string) error {
	return r.db.Model(&models.Photo{}).
		Where("id = ?", photoID).
		Updates(map[string]interface{}{
			"likes_count":   gorm.Expr("likes_count + 1"),
			"last_liker_id": likerID,
		}).Error
}

func (r *PhotoRepository) DecrementLikes(photoID string) error {
	return r.db.Model(&models.Photo{}).
		Where("id = ?", photoID).
		Update("likes_count", gorm.Expr("likes_count - 1")).Error
}

func (r *PhotoRepository) IncrementComments(photoID string) error {
	return r.db.Model(&models.Photo{}).
		Where("id = ?", photoID).
		Update("comments_count", gorm.Expr("comments_count + 1")).Error
}

func (r *PhotoRepository) DecrementComments(photoID string) error {
	return r.db.Model(&models.Photo{}).
		Where("id = ?", photoID).
		Update("comments_count", gorm.Expr("comments_count - 1")).Error
}

func (r *PhotoRepository) IncrementReports(photoID string) error {
	return r.db.Model(&models.Photo{}).
		Where("id = ?", photoID).
		Update("reports_count", gorm.Expr("reports_count + 1")).Error
}

func (r *PhotoRepository) UpdateSharedGroups(photoID string, groupIDs []string) error {
	groupsJSON, err := json.Marshal(groupIDs)
	if err != nil {
		return err
	}

	return r.db.Exec(`
		UPDATE photos
		SET shared_with_group_ids = ?,
		    updated_at = ?
		WHERE id = ?`,
		groupsJSON, time.Now(), photoID,
	).Error
}

// RemoveSharedGroup drops one group id from the shared list with the
// store's native JSON element removal.
func (r *PhotoRepository) RemoveSharedGroup(photoID, groupID string) error {
	return r.db.Exec(`
		UPDATE photos
		SET shared_with_group_ids = (shared_with_group_ids::jsonb - ?)::json,
		    updated_at = ?
		WHERE id = ?`,
		groupID, time.Now(), photoID,
	).Error
}

func (r *PhotoRepository) Delete(id string) error {
	return r.db.Delete(&models.Photo{}, "id = ?", id).Error
}
