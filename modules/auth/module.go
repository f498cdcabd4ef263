package auth

import (
	"pickup/core/cache"
	"pickup/core/database"
	"pickup/core/middleware"
	"pickup/core/utils"
	"pickup/modules/auth/controller"
	"pickup/modules/auth/repository"
	"pickup/modules/auth/router"
	"pickup/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.IDatabase, c cache.Cache, tokens *utils.TokenIssuer, profiles service.ProfileCreator, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo, c, tokens, profiles)
	ctrl := controller.NewAuthController(authService)

	router.NewAuthRouter(ctrl).Setup(v1, mw)
}
