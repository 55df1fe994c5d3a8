package models

import (
	"time"
)

type User struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Username        string    `json:"username" gorm:"not null"`
	Email           string    `json:"email" gorm:"unique;not null"`
	Password        string    `json:"-" gorm:"not null"`
	Bio             string    `json:"bio" gorm:"default:''"`
	ProfileImageURL string    `json:"profile_image_url" gorm:"default:''"`
	FCMToken        string    `json:"-" gorm:"column:fcm_token;default:''"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Username        string `json:"username" validate:"omitempty,min=3,max=50"`
	Bio             string `json:"bio" validate:"omitempty,max=500"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}
