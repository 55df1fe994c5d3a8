package models

import (
	"sort"
	"time"
)

// Photo type tags. "other" is the neutral default used when a draft
// carries no type.
const (
	PhotoTypeNature   = "nature"
	PhotoTypeCity     = "city"
	PhotoTypeBeach    = "beach"
	PhotoTypeMountain = "mountain"
	PhotoTypeMonument = "monument"
	PhotoTypeOther    = "other"
)

type Location struct {
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Address             string  `json:"address" gorm:"default:''"`
	City                string  `json:"city" gorm:"default:''"`
	Country             string  `json:"country" gorm:"default:''"`
	IsExact             bool    `json:"is_exact"`
	ApproximationRadius float64 `json:"approximation_radius"`
}

// FormattedLocation returns "city, country" when both are known and
// falls back to the address.
func (l Location) FormattedLocation() string {
	if l.City != "" && l.Country != "" {
		return l.City + ", " + l.Country
	}
	return l.Address
}

type Photo struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	AuthorID    string `json:"author_id" gorm:"not null;index"`
	AuthorName  string `json:"author_name" gorm:"not null"`
	ImageURL    string `json:"image_url" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`

	HasLocation bool     `json:"has_location"`
	Location    Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`

	TakenDate *time.Time `json:"taken_date"`
	Period    string     `json:"period" gorm:"default:''"`

	Tags          []string `json:"tags" gorm:"type:json;serializer:json"`
	PhotoType     string   `json:"photo_type" gorm:"not null;default:'other'"`
	HowToGetThere string   `json:"how_to_get_there" gorm:"default:''"`

	LikesCount    int    `json:"likes_count" gorm:"default:0"`
	CommentsCount int    `json:"comments_count" gorm:"default:0"`
	ReportsCount  int    `json:"reports_count" gorm:"default:0"`
	LastLikerID   string `json:"last_liker_id" gorm:"default:''"`

	IsPublic           bool     `json:"is_public" gorm:"default:true"`
	SharedWithGroupIDs []string `json:"shared_with_group_ids" gorm:"type:json;serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SortPhotosByDate orders photos newest first. Photos without a creation
// timestamp sort last.
func SortPhotosByDate(photos []Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		if photos[i].CreatedAt.IsZero() {
			return false
		}
		if photos[j].CreatedAt.IsZero() {
			return true
		}
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
}

// PublishPhotoRequest is the draft a client submits. The image itself
// arrives as a multipart file alongside this payload.
type PublishPhotoRequest struct {
	Description         string   `json:"description" validate:"required,min=1,max=2000"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	Address             string   `json:"address"`
	City                string   `json:"city"`
	Country             string   `json:"country"`
	IsExact             bool     `json:"is_exact"`
	ApproximationRadius float64  `json:"approximation_radius"`
	HasLocation         bool     `json:"has_location"`
	TakenDate           string   `json:"taken_date"` // RFC 3339, optional
	Period              string   `json:"period"`
	Tags                []string `json:"tags"`
	PhotoType           string   `json:"photo_type"`
	HowToGetThere       string   `json:"how_to_get_there"`
	IsPublic            bool     `json:"is_public"`
	SharedWithGroupIDs  []string `json:"shared_with_group_ids"`
}

type PublishPhotoResponse struct {
	PhotoID  string `json:"photo_id"`
	ImageURL string `json:"image_url"`
}

type ReportPhotoRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

type SharePhotoRequest struct {
	GroupIDs []string `json:"group_ids" validate:"required,min=1"`
}
