package order

import "github.com/BruksfildServices01/letsorder/internal/models"

// UnknownItemName stands in for menu items deleted after the order was placed.
const UnknownItemName = "Unknown Item"

const (
	MaxLines               = 100
	MaxCustomerNameLength  = 100
	MaxSpecialRequestsSize = 500
)

// Total sums the snapshot prices. It never looks at the live menu.
func Total(lines []models.OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemName resolves a display name, falling back to UnknownItemName.
func ItemName(names map[string]string, menuItemID string) string {
	if n, ok := names[menuItemID]; ok {
		return n
	}
	return UnknownItemName
}
