package routes

import (
	"job-insight/internal/config"
	"job-insight/internal/delivery/http/handler"
	"job-insight/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	store  *cache.Redis
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, store *cache.Redis) *Registry {
	return &Registry{
		cfg:    cfg,
		store:  store,
		health: handler.NewHealthHandler(cfg.App.AppName, store),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.store)
}
