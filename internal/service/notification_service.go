package service

import (
	"errors"
	"regexp"

	"github.com/travelshare/travelshare-backend/internal/models"
)

// Per-user notification page size.
const notificationPageSize = 50

var topicSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

type NotificationService struct {
	notifications NotificationStore
	users         UserStore
	subscriber    TopicSubscriber
}

func NewNotificationService(
	notifications NotificationStore,
	users UserStore,
	subscriber TopicSubscriber,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		subscriber:    subscriber,
	}
}

// GetUserNotifications returns the latest notifications, newest first.
func (s *NotificationService) GetUserNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notifications.GetByUserID(userID, notificationPageSize)
	if err != nil {
		return nil, err
	}
	models.SortNotificationsByDate(notifications)
	return notifications, nil
}

func (s *NotificationService) MarkAsRead(notificationID string) error {
	return s.notifications.MarkRead(notificationID)
}

func (s *NotificationService) MarkAllAsRead(userID string) error {
	return s.notifications.MarkAllRead(userID)
}

func (s *NotificationService) GetUnreadCount(userID string) (int64, error) {
	return s.notifications.CountUnread(userID)
}

// SubscribeToTopic registers the caller's device token to a push topic.
// Topic names are sanitized to the character set the messaging backend
// accepts.
func (s *NotificationService) SubscribeToTopic(userID, topic string) error {
	if userID == "" {
		return errors.New("must be logged in to subscribe")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return errors.New("user not found")
	}
	if user.FCMToken == "" {
		return errors.New("no registered device for user")
	}

	return s.subscriber.Subscribe(topicSanitizer.ReplaceAllString(topic, "_"), user.FCMToken)
}

func (s *NotificationService) SubscribeToUser(userID, targetUserID string) error {
	return s.SubscribeToTopic(userID, "user_"+targetUserID)
}

func (s *NotificationService) SubscribeToGroup(userID, groupID string) error {
	return s.SubscribeToTopic(userID, "group_"+groupID)
}

func (s *NotificationService) SubscribeToLocation(userID, locationID string) error {
	return s.SubscribeToTopic(userID, "location_"+locationID)
}

func (s *NotificationService) SubscribeToTag(userID, tag string) error {
	return s.SubscribeToTopic(userID, "tag_"+tag)
}
