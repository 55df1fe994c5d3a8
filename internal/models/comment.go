package models

import (
	"time"
)

type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	PhotoID    string    `json:"photo_id" gorm:"not null;index"`
	AuthorID   string    `json:"author_id" gorm:"not null"`
	AuthorName string    `json:"author_name" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
