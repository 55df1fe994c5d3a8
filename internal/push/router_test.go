package push

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	sent []LocalNotification
	err  error
}

func (f *fakeNotifier) Notify(n LocalNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]string
	err    error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) UpdateFCMToken(userID, token string) error {
	if f.err != nil {
		return f.err
	}
	f.tokens[userID] = token
	return nil
}

func newRouterForTest(notifier Notifier) (*Router, *fakeTokenStore) {
	tokens := newFakeTokenStore()
	return NewRouter(notifier, tokens, zap.NewNop()), tokens
}

func TestHandleMessagePrefersNotificationBlock(t *testing.T) {
	notifier := &fakeNotifier{}
	router, _ := newRouterForTest(notifier)

	n := router.HandleMessage(RemoteMessage{
		Notification: &NotificationBlock{Title: "Block title", Body: "Block body"},
		Data: map[string]string{
			"title":   "Data title",
			"message": "Data body",
			"type":    "like",
		},
	})

	require.NotNil(t, n)
	assert.Equal(t, "Block title", n.Title)
	assert.Equal(t, "Block body", n.Body)
	require.Len(t, notifier.sent, 1)
}

func TestHandleMessageFallsBackToDataPayload(t *testing.T) {
	router, _ := newRouterForTest(&fakeNotifier{})

	// A partial notification block does not count as displayable.
	n := router.HandleMessage(RemoteMessage{
		Notification: &NotificationBlock{Title: "only a title"},
		Data: map[string]string{
			"title":   "Data title",
			"message": "Data body",
		},
	})

	require.NotNil(t, n)
	assert.Equal(t, "Data title", n.Title)
	assert.Equal(t, "Data body", n.Body)
}

func TestHandleMessageWithoutDisplayableContentIsDropped(t *testing.T) {
	notifier := &fakeNotifier{}
	router, _ := newRouterForTest(notifier)

	assert.Nil(t, router.HandleMessage(RemoteMessage{}))
	assert.Nil(t, router.HandleMessage(RemoteMessage{
		Data: map[string]string{"title": "no body"},
	}))
	assert.Nil(t, router.HandleMessage(RemoteMessage{
		Data: map[string]string{"message": "no title"},
	}))
	assert.Empty(t, notifier.sent)
}

func TestHandleMessageAppliesTierPresentation(t *testing.T) {
	router, _ := newRouterForTest(&fakeNotifier{})

	tests := []struct {
		messageType string
		channel     string
		sound       bool
		vibrate     bool
	}{
		{"mention", ChannelIDHigh, true, true},
		{"like", ChannelIDNormal, true, false},
		{"group_update", ChannelIDLow, false, false},
		{"unknown", ChannelIDNormal, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.messageType, func(t *testing.T) {
			n := router.HandleMessage(RemoteMessage{
				Data: map[string]string{
					"title":   "t",
					"message": "m",
					"type":    tt.messageType,
				},
			})
			require.NotNil(t, n)
			assert.Equal(t, tt.channel, n.ChannelID)
			assert.Equal(t, tt.sound, n.Sound)
			assert.Equal(t, tt.vibrate, n.Vibrate)
		})
	}
}

func TestHandleMessageBigTextThreshold(t *testing.T) {
	router, _ := newRouterForTest(&fakeNotifier{})

	short := router.HandleMessage(RemoteMessage{
		Data: map[string]string{"title": "t", "message": strings.Repeat("x", 40)},
	})
	require.NotNil(t, short)
	assert.False(t, short.BigText)

	long := router.HandleMessage(RemoteMessage{
		Data: map[string]string{"title": "t", "message": strings.Repeat("x", 41)},
	})
	require.NotNil(t, long)
	assert.True(t, long.BigText)
}

func TestHandleMessageAssignsDistinctIDs(t *testing.T) {
	router, _ := newRouterForTest(&fakeNotifier{})
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	router.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	msg := RemoteMessage{Data: map[string]string{"title": "t", "message": "m"}}
	first := router.HandleMessage(msg)
	second := router.HandleMessage(msg)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestHandleMessageBuildsDeepLink(t *testing.T) {
	router, _ := newRouterForTest(&fakeNotifier{})

	n := router.HandleMessage(RemoteMessage{
		Data: map[string]string{
			"title":   "t",
			"message": "m",
			"type":    "comment",
			"photoId": "p1",
			"groupId": "g1",
			"userId":  "u1",
		},
	})

	require.NotNil(t, n)
	assert.True(t, n.DeepLink.OpenPhotoDetail)
	assert.False(t, n.DeepLink.OpenGroup)
	assert.Equal(t, "p1", n.DeepLink.PhotoID)
	assert.Empty(t, n.DeepLink.GroupID)
	assert.Equal(t, "u1", n.DeepLink.UserID)
	assert.Equal(t, "comment", n.DeepLink.NotificationType)
}

func TestHandleMessageNilNotifierStillRenders(t *testing.T) {
	router, _ := newRouterForTest(nil)

	n := router.HandleMessage(RemoteMessage{
		Data: map[string]string{"title": "t", "message": "m"},
	})
	require.NotNil(t, n)
	assert.Equal(t, "t", n.Title)
}

func TestHandleMessageDeliveryFailureIsSwallowed(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("service unavailable")}
	router, _ := newRouterForTest(notifier)

	n := router.HandleMessage(RemoteMessage{
		Data: map[string]string{"title": "t", "message": "m"},
	})
	assert.NotNil(t, n)
}

func TestRegisterToken(t *testing.T) {
	router, tokens := newRouterForTest(&fakeNotifier{})

	router.RegisterToken("user-a", "token-1")
	assert.Equal(t, "token-1", tokens.tokens["user-a"])

	// New token replaces the old one.
	router.RegisterToken("user-a", "token-2")
	assert.Equal(t, "token-2", tokens.tokens["user-a"])
}

func TestRegisterTokenDropsUnauthenticatedOrEmpty(t *testing.T) {
	router, tokens := newRouterForTest(&fakeNotifier{})

	router.RegisterToken("", "token-1")
	router.RegisterToken("user-a", "")
	assert.Empty(t, tokens.tokens)
}

func TestRegisterTokenStoreFailureDoesNotPanic(t *testing.T) {
	tokens := newFakeTokenStore()
	tokens.err = errors.New("db down")
	router := NewRouter(&fakeNotifier{}, tokens, zap.NewNop())

	router.RegisterToken("user-a", "token-1")
}

func TestBuildDeepLinkGroupFallback(t *testing.T) {
	link := BuildDeepLink(map[string]string{
		"groupId": "g1",
		"type":    "group_update",
	})
	assert.True(t, link.OpenGroup)
	assert.False(t, link.OpenPhotoDetail)
	assert.Equal(t, "g1", link.GroupID)

	none := BuildDeepLink(map[string]string{"type": "info"})
	assert.False(t, none.OpenGroup)
	assert.False(t, none.OpenPhotoDetail)
	assert.Equal(t, "info", none.NotificationType)
}
