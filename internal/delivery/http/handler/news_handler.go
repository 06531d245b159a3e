package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/news"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NewsHandler struct {
	uc usecase.NewsUsecase
}

func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

func (h *NewsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/news", h.News)
}

func (h *NewsHandler) News(c fiber.Ctx) error {
	articles, err := h.uc.EmploymentNews(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if articles == nil {
		articles = []news.Article{}
	}
	return c.Status(fiber.StatusOK).JSON(articles)
}
