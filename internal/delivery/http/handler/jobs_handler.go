package handler

import (
	"errors"
	"strconv"

	"job-insight/internal/delivery/http/dto"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/infrastructure/jobsearch"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobsHandler(uc usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.Search)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	params, err := searchParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapJobSearchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobSearchResponse{
		Status:  res.Status,
		Message: res.Message,
		Count:   len(res.Jobs),
		Jobs:    dto.FromJobs(res.Jobs),
	})
}

func searchParamsFromQuery(c fiber.Ctx) (jobsearch.Params, error) {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return jobsearch.Params{}, err
	}
	numPages, err := parseQueryIntStrict(c, "num_pages", 0)
	if err != nil {
		return jobsearch.Params{}, err
	}
	return jobsearch.Params{
		Query:    c.Query("query"),
		Page:     page,
		NumPages: numPages,
	}, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobSearchUsecaseError(err error) error {
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
