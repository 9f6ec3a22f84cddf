package models

import "time"

type User struct {
	ID            string  `gorm:"primaryKey;size:36" json:"id"`
	Email         string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone         *string `gorm:"size:30" json:"phone"`
	PasswordHash  string  `gorm:"size:255;not null" json:"-"`
	EmailVerified bool    `gorm:"default:false" json:"email_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
