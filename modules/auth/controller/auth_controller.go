package controller

import (
	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/modules/auth/dto"
	"pickup/modules/auth/service"
	"pickup/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

func (controller *AuthController) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SignUpRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	validationResult := validator.ValidateSignUpRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	session, err := controller.AuthService.SignUp(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.CreatedResponse(c, session, "Sign up success")
}

func (controller *AuthController) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SignInRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	validationResult := validator.ValidateSignInRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	session, err := controller.AuthService.SignIn(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, session, "Sign in success")
}

// Verify returns the user behind the bearer token.
func (controller *AuthController) Verify(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	user, err := controller.AuthService.Verify(c.Request().Context(), userID)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, user, "Verify success")
}

func (controller *AuthController) SignOut(c echo.Context) error {
	claims, errAuth := middleware.Claims(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	if err := controller.AuthService.SignOut(c.Request().Context(), claims); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Sign out success")
}
