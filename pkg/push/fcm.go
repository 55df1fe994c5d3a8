package push

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	internalPush "github.com/travelshare/travelshare-backend/internal/push"
)

// ErrTargetUnavailable reports that the messaging backend could not be
// reached. Callers treat it as a fire-and-forget no-op.
var ErrTargetUnavailable = errors.New("push target unavailable")

// FCMClient talks to the FCM HTTP API for message delivery and topic
// subscription management.
type FCMClient struct {
	serverKey   string
	endpoint    string
	iidEndpoint string
	client      *http.Client
}

func NewFCMClient(serverKey, endpoint string) *FCMClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &FCMClient{
		serverKey:   serverKey,
		endpoint:    endpoint,
		iidEndpoint: "https://iid.googleapis.com/iid/v1:batchAdd",
		client:      client,
	}
}

type fcmMessage struct {
	To           string            `json:"to"`
	Priority     string            `json:"priority"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	ChannelID string `json:"android_channel_id"`
	Sound     string `json:"sound,omitempty"`
}

// Notify sends the rendered notification to the recipient's user topic.
func (c *FCMClient) Notify(n internalPush.LocalNotification) error {
	priority := "normal"
	if n.ChannelID == internalPush.ChannelIDHigh {
		priority = "high"
	}

	sound := ""
	if n.Sound {
		sound = "default"
	}

	data := map[string]string{
		"notificationType": n.DeepLink.NotificationType,
	}
	if n.DeepLink.OpenPhotoDetail {
		data["openPhotoDetail"] = "true"
		data["photoId"] = n.DeepLink.PhotoID
	}
	if n.DeepLink.OpenGroup {
		data["openGroup"] = "true"
		data["groupId"] = n.DeepLink.GroupID
	}
	if n.DeepLink.UserID != "" {
		data["userId"] = n.DeepLink.UserID
	}

	msg := fcmMessage{
		To:       "/topics/user_" + n.DeepLink.UserID,
		Priority: priority,
		Notification: fcmNotification{
			Title:     n.Title,
			Body:      n.Body,
			ChannelID: n.ChannelID,
			Sound:     sound,
		},
		Data: data,
	}

	return c.post(c.endpoint+"/send", msg)
}

// Subscribe registers a device token to a topic.
func (c *FCMClient) Subscribe(topic, token string) error {
	payload := map[string]interface{}{
		"to":                  "/topics/" + topic,
		"registration_tokens": []string{token},
	}
	return c.post(c.iidEndpoint, payload)
}

func (c *FCMClient) post(url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Authorization", "key="+c.serverKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTargetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrTargetUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push request rejected with status %d", resp.StatusCode)
	}
	return nil
}
