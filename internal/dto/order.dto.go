package dto

import "time"

type OrderLineDTO struct {
	MenuItemID      string  `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests *string `json:"special_requests"`
}

type OrderDetailDTO struct {
	ID             string         `json:"id"`
	TableID        string         `json:"table_id"`
	TableName      string         `json:"table_name"`
	RestaurantName string         `json:"restaurant_name"`
	Items          []OrderLineDTO `json:"items"`
	TotalAmount    float64        `json:"total_amount"`
	Status         string         `json:"status"`
	CustomerName   *string        `json:"customer_name"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type OrderPlacedDTO struct {
	OrderID     string    `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
