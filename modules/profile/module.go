package profile

import (
	"pickup/core/database"
	"pickup/core/middleware"
	"pickup/modules/profile/controller"
	"pickup/modules/profile/repository"
	"pickup/modules/profile/router"
	"pickup/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init returns the service so the auth module can create a profile on signup.
func Init(v1 *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.ProfileService {
	repo := repository.NewProfileRepository(db)
	svc := service.NewProfileService(repo)
	ctrl := controller.NewProfileController(svc)

	router.NewProfileRouter(ctrl).Setup(v1, mw)
	return svc
}
