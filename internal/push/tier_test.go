package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForType(t *testing.T) {
	tests := []struct {
		messageType string
		want        Tier
	}{
		{"mention", TierHigh},
		{"message", TierHigh},
		{"like", TierNormal},
		{"comment", TierNormal},
		{"follow", TierNormal},
		{"group_update", TierLow},
		{"info", TierLow},
		{"something_new", TierNormal},
		{"", TierNormal},
	}

	for _, tt := range tests {
		t.Run("type "+tt.messageType, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForType(tt.messageType))
		})
	}
}

func TestTierPresentation(t *testing.T) {
	tests := []struct {
		tier    Tier
		channel string
		sound   bool
		vibrate bool
	}{
		{TierHigh, ChannelIDHigh, true, true},
		{TierNormal, ChannelIDNormal, true, false},
		{TierLow, ChannelIDLow, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			assert.Equal(t, tt.channel, tt.tier.ChannelID())
			assert.Equal(t, tt.sound, tt.tier.Sound())
			assert.Equal(t, tt.vibrate, tt.tier.Vibrate())
		})
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "high", TierHigh.String())
	assert.Equal(t, "normal", TierNormal.String())
	assert.Equal(t, "low", TierLow.String())
}
