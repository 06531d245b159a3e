package routes

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	recommend *handler.RecommendationHandler
	skillGap  *handler.SkillGapHandler
	news      *handler.NewsHandler
	auth      *handler.AuthHandler
	users     *handler.UserHandler
	authMw    *middleware.AuthMiddleware
}

func NewRegistry(
	recommend *handler.RecommendationHandler,
	skillGap *handler.SkillGapHandler,
	news *handler.NewsHandler,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:    handler.NewHealthHandler(),
		recommend: recommend,
		skillGap:  skillGap,
		news:      news,
		auth:      auth,
		users:     users,
		authMw:    authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.recommend.RegisterRoutes(api)
	r.skillGap.RegisterRoutes(api)
	r.news.RegisterRoutes(api)

	v1 := api.Group("/v1")
	r.auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.authMw.Middleware())
	r.users.RegisterRoutes(protected.Group("/users"))
}
