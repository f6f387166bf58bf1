package app

import (
	"log"

	"job-insight/internal/config"
	"job-insight/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	Cache  *cache.Redis
}

// NewContainer builds the shared infrastructure. An unreachable redis is
// not an error; the cache degrades to a bypass and the service keeps
// serving uncached responses.
func NewContainer(cfg config.Config) (*Container, error) {
	store := cache.NewRedis(cache.Options{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		TTL:      cfg.Redis.TTL,
	}, log.Default())

	return &Container{Config: cfg, Cache: store}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
