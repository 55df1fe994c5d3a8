package service

import (
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/pkg/planner"
)

// Store contracts the services depend on. The gorm repositories satisfy
// them; tests substitute fakes.

type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdateFCMToken(userID, token string) error
}

type PhotoStore interface {
	Create(photo *models.Photo) error
	GetByID(id string) (*models.Photo, error)
	GetPublic(limit int) ([]models.Photo, error)
	GetByType(photoType string) ([]models.Photo, error)
	GetByAuthor(authorID string) ([]models.Photo, error)
	GetBySharedGroup(groupID string) ([]models.Photo, error)
	IncrementLikes(photoID, likerID string) error
	DecrementLikes(photoID string) error
	IncrementComments(photoID string) error
	DecrementComments(photoID string) error
	IncrementReports(photoID string) error
	UpdateSharedGroups(photoID string, groupIDs []string) error
	RemoveSharedGroup(photoID, groupID string) error
	Delete(id string) error
}

type GroupStore interface {
	Create(group *models.Group) error
	GetByID(id string) (*models.Group, error)
	GetAll() ([]models.Group, error)
	GetByMember(userID string) ([]models.Group, error)
	AddMember(groupID, userID string) error
	RemoveMember(groupID, userID string) error
}

type CommentStore interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	GetByPhotoID(photoID string) ([]models.Comment, error)
	Delete(id string) error
	DeleteByPhotoID(photoID string) error
}

type NotificationStore interface {
	Create(notification *models.Notification) error
	GetByUserID(userID string, limit int) ([]models.Notification, error)
	MarkRead(id string) error
	MarkAllRead(userID string) error
	CountUnread(userID string) (int64, error)
	DeleteByPhotoID(photoID string) error
}

type ReportStore interface {
	Create(report *models.Report) error
	CountByPhotoID(photoID string) (int64, error)
}

// TopicSubscriber registers a device token to a push topic.
type TopicSubscriber interface {
	Subscribe(topic, token string) error
}

// RoutePlanner exports a waypoint to an external travel planner.
type RoutePlanner interface {
	AddWaypoint(wp planner.Waypoint) error
}
