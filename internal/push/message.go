package push

// NotificationBlock is the optional human-readable part of an inbound
// remote message.
type NotificationBlock struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// RemoteMessage is the inbound push payload. Data carries the string-keyed
// routing fields: type, photoId, groupId, userId, title, message.
type RemoteMessage struct {
	From         string             `json:"from"`
	Notification *NotificationBlock `json:"notification"`
	Data         map[string]string  `json:"data"`
}

// DeepLink is the payload handed to the navigation entry point when the
// user acts on a notification.
type DeepLink struct {
	OpenPhotoDetail  bool   `json:"open_photo_detail"`
	OpenGroup        bool   `json:"open_group"`
	PhotoID          string `json:"photo_id,omitempty"`
	GroupID          string `json:"group_id,omitempty"`
	UserID           string `json:"user_id,omitempty"`
	NotificationType string `json:"notification_type,omitempty"`
}

// BuildDeepLink derives the navigation target from the message data.
// photoId wins over groupId; type and userId pass through unconditionally.
func BuildDeepLink(data map[string]string) DeepLink {
	link := DeepLink{
		UserID:           data["userId"],
		NotificationType: data["type"],
	}
	if photoID := data["photoId"]; photoID != "" {
		link.OpenPhotoDetail = true
		link.PhotoID = photoID
	} else if groupID := data["groupId"]; groupID != "" {
		link.OpenGroup = true
		link.GroupID = groupID
	}
	return link
}

// LocalNotification is the fully rendered presentation of one message.
type LocalNotification struct {
	ID        int64    `json:"id"`
	ChannelID string   `json:"channel_id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	BigText   bool     `json:"big_text"`
	Sound     bool     `json:"sound"`
	Vibrate   bool     `json:"vibrate"`
	DeepLink  DeepLink `json:"deep_link"`
}
