package group

import (
	"pickup/core/cache"
	"pickup/core/database"
	"pickup/core/middleware"
	"pickup/modules/group/controller"
	"pickup/modules/group/repository"
	"pickup/modules/group/router"
	"pickup/modules/group/service"

	"github.com/labstack/echo/v4"
)

// Init returns the service so notifications can look up group members.
func Init(v1 *echo.Group, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) *service.GroupService {
	repo := repository.NewGroupRepository(db)
	svc := service.NewGroupService(repo, c)
	ctrl := controller.NewGroupController(svc)

	router.NewGroupRouter(ctrl).Setup(v1, mw)
	return svc
}
