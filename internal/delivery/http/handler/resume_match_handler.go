package handler

import (
	"errors"

	"job-insight/internal/delivery/http/dto"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/infrastructure/resumeparse"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeMatchHandler struct {
	uc usecase.ResumeMatchUsecase
}

func NewResumeMatchHandler(uc usecase.ResumeMatchUsecase) *ResumeMatchHandler {
	return &ResumeMatchHandler{uc: uc}
}

func (h *ResumeMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *ResumeMatchHandler) Match(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}

	search, err := searchParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.MatchResume(c.Context(), resumeparse.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
	}, search)
	if err != nil {
		return mapResumeMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResumeMatch(res))
}

func mapResumeMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidResume):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume file", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
