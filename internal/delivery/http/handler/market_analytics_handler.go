package handler

import (
	"errors"

	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarketAnalyticsHandler struct {
	uc usecase.MarketAnalyticsUsecase
}

func NewMarketAnalyticsHandler(uc usecase.MarketAnalyticsUsecase) *MarketAnalyticsHandler {
	return &MarketAnalyticsHandler{uc: uc}
}

func (h *MarketAnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/market", h.Market)
	r.Get("/roles", h.Roles)
}

func (h *MarketAnalyticsHandler) Market(c fiber.Ctx) error {
	search, err := searchParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	trendDays, err := parseQueryIntStrict(c, "trend_days", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	recentDays, err := parseQueryIntStrict(c, "recent_days", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sum, err := h.uc.Summary(c.Context(), usecase.MarketSummaryParams{
		Search:     search,
		Role:       c.Query("role"),
		TrendDays:  trendDays,
		RecentDays: recentDays,
	})
	if err != nil {
		return mapMarketAnalyticsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, sum)
}

func (h *MarketAnalyticsHandler) Roles(c fiber.Ctx) error {
	search, err := searchParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	roles, err := h.uc.RoleOptions(c.Context(), search)
	if err != nil {
		return mapMarketAnalyticsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"roles": roles})
}

func mapMarketAnalyticsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
