package domain

import "time"

// MenuItem represents a sellable item in the menu catalog.
// Price is in whole rupees; the menu has no fractional pricing.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// CartLine is a menu item snapshot plus a quantity. The item fields are
// copied at add-time, so later catalog edits never change a line already
// in the cart.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

// Sale is an immutable record of a completed, paid order. Items hold the
// cart snapshot at completion time, not live catalog references.
type Sale struct {
	ID            string     `json:"id"`
	Items         []CartLine `json:"items"`
	Total         int        `json:"total"`
	Date          time.Time  `json:"date"`
	PaymentMethod string     `json:"paymentMethod"`
}

// DefaultMenu returns the built-in starter menu used when no persisted
// state exists yet.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Idly", Price: 30, Image: "/images/idly.jpg", Category: "Breakfast"},
		{ID: "2", Name: "Puttu", Price: 40, Image: "/images/puttu.jpg", Category: "Breakfast"},
		{ID: "3", Name: "Poori", Price: 45, Image: "/images/poori.jpg", Category: "Breakfast"},
		{ID: "4", Name: "Filter Coffee", Price: 25, Image: "/images/coffee.jpg", Category: "Beverages"},
		{ID: "5", Name: "Masala Dosa", Price: 60, Image: "/images/dosa.jpg", Category: "Breakfast"},
		{ID: "6", Name: "Medu Vada", Price: 35, Image: "/images/vada.jpg", Category: "Breakfast"},
	}
}
