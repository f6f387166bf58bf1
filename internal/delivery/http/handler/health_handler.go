package handler

import (
	"context"

	"job-insight/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	cache   Pinger
}

func NewHealthHandler(appName string, cache Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/healthz", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheStatus := "down"
	if h.cache != nil && h.cache.Ping(c.Context()) == nil {
		cacheStatus = "up"
	}

	data := map[string]any{
		"app":   h.appName,
		"cache": cacheStatus,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
