package handler

import (
	"errors"

	"job-insight/internal/delivery/http/dto"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerAdviceHandler struct {
	uc usecase.CareerAdviceUsecase
}

func NewCareerAdviceHandler(uc usecase.CareerAdviceUsecase) *CareerAdviceHandler {
	return &CareerAdviceHandler{uc: uc}
}

func (h *CareerAdviceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/advice", h.Advise)
}

func (h *CareerAdviceHandler) Advise(c fiber.Ctx) error {
	var req dto.AdviceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Advise(c.Context(), usecase.AdviceRequest{
		Prompt:          req.Prompt,
		Type:            req.Type,
		Role:            req.Role,
		Experience:      req.Experience,
		JobTitles:       req.JobTitles,
		JobDescriptions: req.JobDescriptions,
	})
	if err != nil {
		return mapCareerAdviceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AdviceResponse{
		Text:   res.Text,
		Skills: res.Skills,
	})
}

func mapCareerAdviceUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Prompt or advice parameters are required", nil, err)
	case errors.Is(err, usecase.ErrAdviceNotConfigured):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "AI advice is not configured", nil, err)
	case errors.Is(err, usecase.ErrAdviceUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, "AI advice is temporarily unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
