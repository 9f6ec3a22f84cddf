package models

import "time"

type MenuSection struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	RestaurantID string     `gorm:"size:36;not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"name"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`

	Items []MenuItem `gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	SectionID string `gorm:"size:36;not null;index" json:"section_id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Description  *string `gorm:"size:500" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Available    bool    `gorm:"not null" json:"available"`
	DisplayOrder int     `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
}
