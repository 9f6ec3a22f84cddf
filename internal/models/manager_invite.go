package models

import "time"

type ManagerInvite struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	RestaurantID string     `gorm:"size:36;not null;index:idx_invite_restaurant_email" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Email         string    `gorm:"size:255;not null;index:idx_invite_restaurant_email" json:"email"`
	CanManageMenu bool      `gorm:"not null;default:false" json:"can_manage_menu"`
	Token         string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt     time.Time `gorm:"index;not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
