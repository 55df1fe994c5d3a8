package repository

import (
	"github.com/travelshare/travelshare-backend/internal/models"
	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

func (r *GroupRepository) GetByID(id string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Find(&groups).Error
	return groups, err
}

// GetByMember delegates membership lookup to the store's native JSON
// containment query.
func (r *GroupRepository) GetByMember(userID string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.
		Where("jsonb_exists(member_ids::jsonb, ?)", userID).
		Find(&groups).Error
	return groups, err
}

// AddMember appends the user to the member list in a single statement.
// Adding an existing member matches zero rows, so the operation is
// idempotent.
func (r *GroupRepository) AddMember(groupID, userID string) error {
	return r.db.Exec(`
		UPDATE groups
		SET member_ids = (member_ids::jsonb || to_jsonb(?::text))::json
		WHERE id = ? AND NOT jsonb_exists(member_ids::jsonb, ?)`,
		userID, groupID, userID,
	).Error
}

// RemoveMember drops the user from the member list. Removing a non-member
// is a no-op.
func (r *GroupRepository) RemoveMember(groupID, userID string) error {
	return r.db.Exec(`
		UPDATE groups
		SET member_ids = (member_ids::jsonb - ?)::json
		WHERE id = ?`,
		userID, groupID,
	).Error
}
