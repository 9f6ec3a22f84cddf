package models

import "time"

type Table struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	RestaurantID string     `gorm:"size:36;not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name       string `gorm:"size:100;not null" json:"name"`
	UniqueCode string `gorm:"size:16;uniqueIndex;not null" json:"unique_code"`

	CreatedAt time.Time `json:"created_at"`
}
