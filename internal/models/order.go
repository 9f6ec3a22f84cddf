package models

import "time"

// OrderLine is the price snapshot of one requested menu item, taken when
// the order was placed. It is never updated from the live menu.
type OrderLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Notes      *string `json:"notes,omitempty"`
}

type Order struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	TableID string `gorm:"size:36;not null;index" json:"table_id"`
	Table   Table  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// all lines live in one row so an order is written by a single insert
	Items []OrderLine `gorm:"type:text;serializer:json;not null" json:"items"`

	TotalAmount  float64 `gorm:"not null" json:"total_amount"`
	Status       string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	CustomerName *string `gorm:"size:100" json:"customer_name"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
