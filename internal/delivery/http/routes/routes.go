package routes

import (
	"skill-gap/internal/delivery/http/handler"
	v1 "skill-gap/internal/delivery/http/routes/v1"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	ws     *ws.Handler
}

func NewRegistry(v1Handlers v1.Handlers, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		v1:     v1Handlers,
		ws:     wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)

	if r.ws != nil {
		app.Get("/ws/dashboard", r.ws.HandleDashboardWS)
	}
}
