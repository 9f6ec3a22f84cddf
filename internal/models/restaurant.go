package models

import "time"

type Restaurant struct {
	ID                string  `gorm:"primaryKey;size:36" json:"id"`
	Name              string  `gorm:"size:100;not null" json:"name"`
	Address           *string `gorm:"size:255" json:"address"`
	EstablishmentYear *int    `json:"establishment_year"`
	GoogleMapsLink    *string `gorm:"size:500" json:"google_maps_link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
