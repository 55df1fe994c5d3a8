package models

import (
	"time"
)

type Group struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"default:''"`
	ImageURL    string    `json:"image_url" gorm:"default:''"`
	OwnerID     string    `json:"owner_id" gorm:"not null;index"`
	MemberIDs   []string  `json:"member_ids" gorm:"type:json;serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddMember adds a user to the group. Adding an existing member is a no-op.
func (g *Group) AddMember(userID string) {
	if g.IsMember(userID) {
		return
	}
	g.MemberIDs = append(g.MemberIDs, userID)
}

// RemoveMember removes a user from the group. Removing a non-member is a no-op.
func (g *Group) RemoveMember(userID string) {
	for i, id := range g.MemberIDs {
		if id == userID {
			g.MemberIDs = append(g.MemberIDs[:i], g.MemberIDs[i+1:]...)
			return
		}
	}
}

func (g *Group) IsMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (g *Group) MemberCount() int {
	return len(g.MemberIDs)
}

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}
