package models

import "time"

const (
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
)

// RestaurantManager links a user to a restaurant. Role and menu capability
// are independent of each other.
type RestaurantManager struct {
	RestaurantID string     `gorm:"primaryKey;size:36" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID string `gorm:"primaryKey;size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Role          string `gorm:"size:20;not null" json:"role"`
	CanManageMenu bool   `gorm:"not null;default:false" json:"can_manage_menu"`

	CreatedAt time.Time `json:"created_at"`
}
