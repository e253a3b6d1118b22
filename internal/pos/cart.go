package pos

import (
	"context"

	"spice-pos/internal/domain"
)

// Cart returns a copy of the current cart lines.
func (e *Engine) Cart() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cartSnapshot()
}

// cartSnapshot copies the cart. Callers must hold the lock.
func (e *Engine) cartSnapshot() []domain.CartLine {
	lines := make([]domain.CartLine, len(e.cart))
	copy(lines, e.cart)
	return lines
}

// AddToCart adds one unit of the given menu item to the cart. An existing
// line for the item has its quantity incremented; otherwise a new line is
// appended holding a value copy of the item as priced right now. Later
// catalog edits do not change lines already in the cart. Unknown ids are
// a no-op and return false.
func (e *Engine) AddToCart(ctx context.Context, itemID string) (domain.CartLine, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cart {
		if e.cart[i].ID == itemID {
			e.cart[i].Quantity++
			return e.cart[i], true
		}
	}

	for _, item := range e.menu {
		if item.ID == itemID {
			line := domain.CartLine{MenuItem: item, Quantity: 1}
			e.cart = append(e.cart, line)
			return line, true
		}
	}

	return domain.CartLine{}, false
}

// UpdateQuantity sets the line's quantity to exactly quantity (replace,
// not increment). A quantity of zero or less removes the line. Absent ids
// are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLine(itemID)
		return
	}

	for i := range e.cart {
		if e.cart[i].ID == itemID {
			e.cart[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart deletes the line for the given item if present.
func (e *Engine) RemoveFromCart(ctx context.Context, itemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLine(itemID)
}

// removeLine deletes the line in place. Callers must hold the lock.
func (e *Engine) removeLine(itemID string) {
	for i := range e.cart {
		if e.cart[i].ID == itemID {
			e.cart = append(e.cart[:i], e.cart[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (e *Engine) ClearCart(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = nil
}

// CartTotal recomputes the cart total from the current lines on every
// call; there is no cached counter to go stale.
func (e *Engine) CartTotal() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cartTotal(e.cart)
}

func cartTotal(lines []domain.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total
}
