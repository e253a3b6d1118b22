// Package receipt renders a cart snapshot into the printable bill handed
// to the customer. It is read-only with respect to the engine: callers
// pass in the snapshot and total before completing the sale.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"spice-pos/internal/domain"
)

const ticketWidth = 32

// Line is one printed row of the bill.
type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	LineTotal int    `json:"lineTotal"`
}

// Receipt is the structured form of a bill.
type Receipt struct {
	RestaurantName string    `json:"restaurantName"`
	Tagline        string    `json:"tagline"`
	Timestamp      time.Time `json:"timestamp"`
	Lines          []Line    `json:"lines"`
	Total          int       `json:"total"`
}

// Build assembles a receipt from a cart snapshot. An empty cart produces
// no receipt, mirroring the till's no-op on printing an empty order.
func Build(restaurantName string, at time.Time, cart []domain.CartLine) (Receipt, bool) {
	if len(cart) == 0 {
		return Receipt{}, false
	}

	r := Receipt{
		RestaurantName: restaurantName,
		Tagline:        "Authentic South Indian Cuisine",
		Timestamp:      at,
	}
	for _, line := range cart {
		r.Lines = append(r.Lines, Line{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			LineTotal: line.LineTotal(),
		})
		r.Total += line.LineTotal()
	}

	return r, true
}

// Text renders the receipt as a monospace ticket.
func (r Receipt) Text() string {
	var b strings.Builder
	rule := strings.Repeat("-", ticketWidth)

	b.WriteString(center(r.RestaurantName) + "\n")
	b.WriteString(center(r.Tagline) + "\n")
	b.WriteString(center(r.Timestamp.Format("02 Jan 2006 15:04")) + "\n")
	b.WriteString(rule + "\n")

	for _, line := range r.Lines {
		qty := fmt.Sprintf("x%d", line.Quantity)
		amount := fmt.Sprintf("₹%d", line.LineTotal)
		pad := ticketWidth - len([]rune(line.Name)) - len(qty) - len([]rune(amount)) - 1
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(&b, "%s%s%s %s\n", line.Name, strings.Repeat(" ", pad), qty, amount)
	}

	b.WriteString(rule + "\n")
	total := fmt.Sprintf("₹%d", r.Total)
	fmt.Fprintf(&b, "TOTAL%s%s\n", strings.Repeat(" ", ticketWidth-5-len([]rune(total))), total)
	b.WriteString(rule + "\n")
	b.WriteString(center("Thank you for dining with us!") + "\n")
	b.WriteString(center("Visit again") + "\n")

	return b.String()
}

func center(s string) string {
	n := len([]rune(s))
	if n >= ticketWidth {
		return s
	}
	left := (ticketWidth - n) / 2
	return strings.Repeat(" ", left) + s
}
