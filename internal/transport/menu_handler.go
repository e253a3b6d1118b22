package transport

import (
	"net/http"

	"spice-pos/internal/middleware"
	"spice-pos/internal/pos"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateMenuItemRequest represents the payload for adding a menu item.
// The engine itself is permissive; shape checks live at this edge only.
type CreateMenuItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Image    string `json:"image"`
	Category string `json:"category" validate:"required"`
}

// UpdateMenuItemRequest represents a partial menu item update
type UpdateMenuItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Price    *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
}

// MenuHandler handles HTTP requests for menu catalog management
type MenuHandler struct {
	engine *pos.Engine
	logger *zap.Logger
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(engine *pos.Engine, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes registers all menu routes
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns the full menu catalog
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.Menu())
}

// Create adds a new menu item
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Menu item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := h.engine.AddMenuItem(r.Context(), pos.MenuItemDraft{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	})

	h.logger.Info("Menu item added", zap.String("item_id", item.ID), zap.String("name", item.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// Update applies a partial update to a menu item
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateMenuItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Menu item update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := h.engine.UpdateMenuItem(r.Context(), id, pos.MenuItemUpdate{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	})
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "menu item not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, item)
}

// Delete removes a menu item
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.engine.DeleteMenuItem(r.Context(), id) {
		middleware.RespondWithError(w, http.StatusNotFound, "menu item not found")
		return
	}

	h.logger.Info("Menu item deleted", zap.String("item_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "menu item deleted"})
}
