package router

import (
	"pickup/core/middleware"
	"pickup/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

// Setup registers event routes. Reads are public, writes need a token.
func (r *EventRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	events := v1.Group("/events")

	events.GET("", r.EventController.GetEvents)
	events.GET("/:id", r.EventController.GetEvent)
	events.GET("/:id/ics", r.EventController.ExportEvent)

	events.POST("", r.EventController.CreateEvent, mw.AuthMiddleware())
	events.PUT("/:id", r.EventController.UpdateEvent, mw.AuthMiddleware())
	events.DELETE("/:id", r.EventController.DeleteEvent, mw.AuthMiddleware())
}
