package router

import (
	"pickup/core/middleware"
	"pickup/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	auth := v1.Group("/auth")

	auth.POST("/signup", r.AuthController.SignUp)
	auth.POST("/signin", r.AuthController.SignIn)
	auth.GET("/verify", r.AuthController.Verify, mw.AuthMiddleware())
	auth.POST("/signout", r.AuthController.SignOut, mw.AuthMiddleware())
}
