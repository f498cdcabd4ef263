package notification

import (
	"pickup/core/database"
	"pickup/core/middleware"
	"pickup/modules/notification/controller"
	"pickup/modules/notification/repository"
	"pickup/modules/notification/router"
	"pickup/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init returns the service; the worker calls it when an event is created.
func Init(v1 *echo.Group, db database.IDatabase, groups service.GroupMembers, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, groups)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(v1, mw)
	return svc
}
