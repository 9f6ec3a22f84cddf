package dto

type PublicMenuItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
}

type PublicMenuSectionDTO struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Items []PublicMenuItemDTO `json:"items"`
}

type PublicMenuDTO struct {
	RestaurantID      string                 `json:"restaurant_id"`
	RestaurantName    string                 `json:"restaurant_name"`
	RestaurantAddress *string                `json:"restaurant_address"`
	TableName         string                 `json:"table_name"`
	TableCode         string                 `json:"table_code"`
	Sections          []PublicMenuSectionDTO `json:"sections"`
}
