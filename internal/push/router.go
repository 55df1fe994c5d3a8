package push

import (
	"time"

	"go.uber.org/zap"
)

// Body text longer than this is rendered in the expandable big-text style.
const bigTextThreshold = 40

// Notifier delivers a rendered notification to the platform notification
// service. Delivery is fire-and-forget from the router's point of view.
type Notifier interface {
	Notify(n LocalNotification) error
}

// TokenStore persists a push registration token against a user record.
type TokenStore interface {
	UpdateFCMToken(userID, token string) error
}

// Router turns inbound remote messages into local notifications and keeps
// push registration tokens up to date.
type Router struct {
	notifier Notifier
	tokens   TokenStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewRouter(notifier Notifier, tokens TokenStore, logger *zap.Logger) *Router {
	return &Router{
		notifier: notifier,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// HandleMessage classifies the message, builds its deep link and raises a
// local notification. It returns the rendered notification, or nil when
// the message yields no displayable title/body pair.
func (r *Router) HandleMessage(msg RemoteMessage) *LocalNotification {
	title, body := displayText(msg)
	if title == "" || body == "" {
		r.logger.Debug("push message without displayable content dropped",
			zap.String("from", msg.From))
		return nil
	}

	tier := TierForType(msg.Data["type"])

	// Time-based ID so concurrent notifications do not overwrite each other.
	n := LocalNotification{
		ID:        r.now().UnixNano(),
		ChannelID: tier.ChannelID(),
		Title:     title,
		Body:      body,
		BigText:   len(body) > bigTextThreshold,
		Sound:     tier.Sound(),
		Vibrate:   tier.Vibrate(),
		DeepLink:  BuildDeepLink(msg.Data),
	}

	if r.notifier == nil {
		return &n
	}
	if err := r.notifier.Notify(n); err != nil {
		// Fire-and-forget: an unavailable notification service is a no-op.
		r.logger.Warn("notification delivery failed",
			zap.Int64("notification_id", n.ID),
			zap.String("channel", n.ChannelID),
			zap.Error(err))
	}
	return &n
}

// RegisterToken persists a fresh registration token for an authenticated
// user. Tokens from unauthenticated callers are dropped silently.
func (r *Router) RegisterToken(userID, token string) {
	if userID == "" || token == "" {
		return
	}
	if err := r.tokens.UpdateFCMToken(userID, token); err != nil {
		r.logger.Error("failed to save push registration token",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// displayText prefers the notification block; otherwise it derives
// title/body from the data payload.
func displayText(msg RemoteMessage) (string, string) {
	if msg.Notification != nil && msg.Notification.Title != "" && msg.Notification.Body != "" {
		return msg.Notification.Title, msg.Notification.Body
	}
	return msg.Data["title"], msg.Data["message"]
}
