package handler

import (
	"zenvira/internal/delivery/api/response"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the seller and admin dashboards.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// Seller handles GET /api/stats/seller. The sellerId query is honoured for admins only.
func (h *StatsHandler) Seller(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	stats, err := h.statsUC.SellerStats(c.Request().Context(), principal, c.QueryParam("sellerId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}

// Admin handles GET /api/stats/admin.
func (h *StatsHandler) Admin(c echo.Context) error {
	stats, err := h.statsUC.AdminStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}
