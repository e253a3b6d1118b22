package transport

import (
	"net/http"
	"strconv"

	"spice-pos/internal/middleware"
	"spice-pos/internal/pos"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReportHandler serves the aggregate sales reports
type ReportHandler struct {
	engine *pos.Engine
	logger *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(engine *pos.Engine, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/monthly", h.Monthly)
		r.Get("/popular", h.Popular)
		r.Get("/stats", h.Stats)
	})
	r.Get("/api/sales", h.Sales)
}

// Monthly returns per-month revenue and order counts
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.MonthlySales())
}

// Popular returns the best-selling items by quantity
func (h *ReportHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 5)
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.PopularItems(limit))
}

// Stats returns total revenue, order count and average order value
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.Stats())
}

// Sales returns recent sales, newest first
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.RecentSales(limit))
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}
