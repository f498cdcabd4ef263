package router

import (
	"pickup/core/middleware"
	"pickup/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{ProfileController: profileController}
}

func (r *ProfileRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	profiles := v1.Group("/profiles")

	profiles.GET("", r.ProfileController.QueryProfiles)
	profiles.GET("/:id", r.ProfileController.GetProfile)
	profiles.POST("", r.ProfileController.CreateProfile, mw.AuthMiddleware())
	profiles.PUT("/:id", r.ProfileController.UpdateProfile, mw.AuthMiddleware())
}
