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

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/trending_skills", h.TrendingSkills)
	r.Get("/skill_gap_analysis/:uid", h.SkillGapAnalysis)
}

func (h *SkillGapHandler) TrendingSkills(c fiber.Ctx) error {
	skills, err := h.uc.TrendingSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if skills == nil {
		skills = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(skills)
}

func (h *SkillGapHandler) SkillGapAnalysis(c fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return userNotFound(c)
	}

	report, err := h.uc.Analyze(c.Context(), uid)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return userNotFound(c)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromSkillGapReport(report))
}
