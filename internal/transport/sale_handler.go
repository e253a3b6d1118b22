package transport

import (
	"net/http"

	"spice-pos/internal/domain"
	"spice-pos/internal/middleware"
	"spice-pos/internal/pos"
	"spice-pos/internal/receipt"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutRequest represents the payload for completing a sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// CheckoutResponse carries the recorded sale and the printable bill
type CheckoutResponse struct {
	Sale    domain.Sale `json:"sale"`
	Receipt string      `json:"receipt"`
}

// SaleHandler handles checkout and receipt preview
type SaleHandler struct {
	engine         *pos.Engine
	restaurantName string
	logger         *zap.Logger
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(engine *pos.Engine, restaurantName string, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		engine:         engine,
		restaurantName: restaurantName,
		logger:         logger,
	}
}

// RegisterRoutes registers checkout and receipt routes
func (h *SaleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/checkout", h.Checkout)
	r.Get("/api/receipt", h.ReceiptPreview)
}

// Checkout completes the sale for the current cart. The receipt is built
// from the sale's own cart snapshot, since completing the sale clears the
// cart as a side effect.
func (h *SaleHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale := h.engine.CompleteSale(r.Context(), req.PaymentMethod)
	if sale == nil {
		middleware.RespondWithError(w, http.StatusConflict, "cart is empty")
		return
	}

	bill, _ := receipt.Build(h.restaurantName, sale.Date, sale.Items)

	middleware.RespondWithJSON(w, http.StatusOK, CheckoutResponse{
		Sale:    *sale,
		Receipt: bill.Text(),
	})
}

// ReceiptPreview renders a bill for the current cart without completing
// the sale
func (h *SaleHandler) ReceiptPreview(w http.ResponseWriter, r *http.Request) {
	lines := h.engine.Cart()

	bill, ok := receipt.Build(h.restaurantName, h.engine.Now(), lines)
	if !ok {
		middleware.RespondWithError(w, http.StatusConflict, "cart is empty")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(bill.Text()))
}
