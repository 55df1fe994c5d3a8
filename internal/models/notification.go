package models

import (
	"sort"
	"time"
)

// Persisted notification types.
const (
	NotificationTypeNewLike         = "like"
	NotificationTypeNewComment      = "comment"
	NotificationTypeGroupInvitation = "group_invitation"
	NotificationTypeNewPhoto        = "new_photo"
)

type Notification struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	UserID         string    `json:"user_id" gorm:"not null;index"`
	Type           string    `json:"type" gorm:"not null"`
	Title          string    `json:"title" gorm:"not null"`
	Message        string    `json:"message" gorm:"not null"`
	RelatedPhotoID string    `json:"related_photo_id" gorm:"default:''"`
	RelatedUserID  string    `json:"related_user_id" gorm:"default:''"`
	RelatedGroupID string    `json:"related_group_id" gorm:"default:''"`
	Read           bool      `json:"read" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
}

// SortNotificationsByDate orders notifications newest first, zero
// timestamps last.
func SortNotificationsByDate(notifications []Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.IsZero() {
			return false
		}
		if notifications[j].CreatedAt.IsZero() {
			return true
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type SubscribeRequest struct {
	Topic string `json:"topic" validate:"required"`
}
