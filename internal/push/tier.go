package push

// Notification channels, one per urgency tier.
const (
	ChannelIDHigh   = "travelshare_high"
	ChannelIDNormal = "travelshare_normal"
	ChannelIDLow    = "travelshare_low"
)

// Tier is the urgency classification driving presentation.
type Tier int

const (
	TierLow Tier = iota
	TierNormal
	TierHigh
)

// TierForType maps a message type to its tier. Unknown or absent types
// fall back to normal.
func TierForType(messageType string) Tier {
	switch messageType {
	case "mention", "message":
		return TierHigh
	case "like", "comment", "follow":
		return TierNormal
	case "group_update", "info":
		return TierLow
	default:
		return TierNormal
	}
}

func (t Tier) ChannelID() string {
	switch t {
	case TierHigh:
		return ChannelIDHigh
	case TierLow:
		return ChannelIDLow
	default:
		return ChannelIDNormal
	}
}

// Sound is enabled for the high and normal channels only.
func (t Tier) Sound() bool {
	return t != TierLow
}

// Vibrate is enabled for the high channel only.
func (t Tier) Vibrate() bool {
	return t == TierHigh
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierLow:
		return "low"
	default:
		return "normal"
	}
}
