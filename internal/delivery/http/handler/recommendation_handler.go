package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// RecommendationHandler serves the job recommendation endpoint. Its responses
// keep the raw shapes the frontend consumes: a bare JSON array on success and
// a bare {"error": ...} object on a missing user, not the envelope used by
// the v1 API.
type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommend_jobs/:uid", h.RecommendJobs)
}

func (h *RecommendationHandler) RecommendJobs(c fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return userNotFound(c)
	}

	records, err := h.uc.RecommendJobs(c.Context(), uid)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return userNotFound(c)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromJobRecords(records))
}

func userNotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
}
