package transport

import (
	"net/http"

	"spice-pos/internal/domain"
	"spice-pos/internal/middleware"
	"spice-pos/internal/pos"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents the payload for adding an item to the cart
type AddToCartRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// UpdateQuantityRequest represents the payload for setting a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart snapshot plus its recomputed total
type CartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total int               `json:"total"`
}

// CartHandler handles HTTP requests for the active cart
type CartHandler struct {
	engine *pos.Engine
	logger *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(engine *pos.Engine, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Put("/items/{id}", h.UpdateQuantity)
		r.Delete("/items/{id}", h.RemoveItem)
	})
}

func (h *CartHandler) cartResponse() CartResponse {
	return CartResponse{
		Items: h.engine.Cart(),
		Total: h.engine.CartTotal(),
	}
}

// Get returns the current cart snapshot and total
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem adds one unit of a menu item to the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, ok := h.engine.AddToCart(r.Context(), req.ItemID); !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "menu item not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// UpdateQuantity sets a cart line to an exact quantity; zero or less
// removes the line
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update quantity validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.engine.UpdateQuantity(r.Context(), id, req.Quantity)
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.engine.RemoveFromCart(r.Context(), id)
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.engine.ClearCart(r.Context())
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}
