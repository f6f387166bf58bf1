package routes

import (
	"job-insight/internal/config"
	v1 "job-insight/internal/delivery/http/routes/v1"
	"job-insight/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, store *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, store)
}
