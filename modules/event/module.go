package event

import (
	"pickup/core/cache"
	"pickup/core/database"
	"pickup/core/middleware"
	"pickup/core/queue"
	"pickup/modules/event/controller"
	"pickup/modules/event/repository"
	"pickup/modules/event/router"
	"pickup/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module and registers its routes. The returned
// service also handles the event:created background task.
func Init(v1 *echo.Group, db database.IDatabase, c cache.Cache, q queue.Enqueuer, identities service.IdentityResolver, mw *middleware.Middleware) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, c, q, identities)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(v1, mw)
	return svc
}
