package models

import (
	"time"
)

type Report struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	PhotoID    string    `json:"photo_id" gorm:"not null;index"`
	ReporterID string    `json:"reporter_id" gorm:"not null"`
	Reason     string    `json:"reason" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
