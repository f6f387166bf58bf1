package v1

import (
	"log"

	"job-insight/internal/config"
	"job-insight/internal/delivery/http/handler"
	"job-insight/internal/infrastructure/ai"
	"job-insight/internal/infrastructure/cache"
	"job-insight/internal/infrastructure/jobsearch"
	"job-insight/internal/infrastructure/resumeparse"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, store *cache.Redis) {
	if r == nil {
		return
	}

	logger := log.Default()

	client := jobsearch.NewClient(
		cfg.JobSearch.BaseURL,
		cfg.JobSearch.APIKey,
		cfg.JobSearch.APIHost,
		cfg.JobSearch.Timeout,
		logger,
	)
	gemini := ai.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	parser := resumeparse.NewSimulated()

	searchUC := usecase.NewJobSearchUsecase(client, store, cfg.JobSearch.Cooldown, logger)
	analyticsUC := usecase.NewMarketAnalyticsUsecase(searchUC)
	matchUC := usecase.NewResumeMatchUsecase(parser, searchUC)
	adviceUC := usecase.NewCareerAdviceUsecase(gemini)

	jobsHandler := handler.NewJobsHandler(searchUC)
	analyticsHandler := handler.NewMarketAnalyticsHandler(analyticsUC)
	matchHandler := handler.NewResumeMatchHandler(matchUC)
	adviceHandler := handler.NewCareerAdviceHandler(adviceUC)

	jobsHandler.RegisterRoutes(r)
	analyticsHandler.RegisterRoutes(r.Group("/analytics"))
	matchHandler.RegisterRoutes(r.Group("/resume"))
	adviceHandler.RegisterRoutes(r.Group("/ai"))
}
