package pos

import (
	"context"

	"spice-pos/internal/domain"

	"go.uber.org/zap"
)

// CompleteSale finalizes the current cart as a paid order: a new Sale
// with a deep snapshot of the cart lines, the total at this instant, the
// current timestamp and the given payment method is appended to the
// ledger, and the cart is cleared. Both effects happen under one lock
// acquisition, so no caller can observe a recorded sale with a non-empty
// cart or vice versa. An empty cart is a no-op returning nil.
func (e *Engine) CompleteSale(ctx context.Context, paymentMethod string) *domain.Sale {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) == 0 {
		return nil
	}

	sale := domain.Sale{
		ID:            e.newID(),
		Items:         e.cartSnapshot(),
		Total:         cartTotal(e.cart),
		Date:          e.now(),
		PaymentMethod: paymentMethod,
	}

	e.sales = append(e.sales, sale)
	e.cart = nil
	e.persist(ctx)

	e.logger.Info("Sale completed",
		zap.String("sale_id", sale.ID),
		zap.Int("total", sale.Total),
		zap.String("payment_method", sale.PaymentMethod),
	)

	return &sale
}

// Sales returns a copy of the full ledger in chronological order.
func (e *Engine) Sales() []domain.Sale {
	e.mu.Lock()
	defer e.mu.Unlock()

	sales := make([]domain.Sale, len(e.sales))
	copy(sales, e.sales)
	return sales
}

// RecentSales returns up to limit sales, newest first.
func (e *Engine) RecentSales(limit int) []domain.Sale {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.sales)
	if limit > n {
		limit = n
	}
	if limit < 0 {
		limit = 0
	}

	recent := make([]domain.Sale, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, e.sales[i])
	}
	return recent
}
