package controller

import (
	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/core/utils"
	"pickup/modules/profile/dto"
	"pickup/modules/profile/service"
	"pickup/modules/profile/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	controller.BaseController
	ProfileService service.ProfileServiceInterface
}

func NewProfileController(svc service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		ProfileService: svc,
	}
}

func (controller *ProfileController) bindProfile(c echo.Context) (*dto.ProfileRequest, error) {
	requestData := new(dto.ProfileRequest)
	if err := c.Bind(requestData); err != nil {
		return nil, controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}
	validationResult := validator.ValidateProfileRequest(requestData)
	if validationResult.HasError() {
		return nil, controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}
	return requestData, nil
}

// QueryProfiles answers GET /profiles?user=<id>.
func (controller *ProfileController) QueryProfiles(c echo.Context) error {
	userID := utils.ToUUID(c.QueryParam("user"))
	if userID == uuid.Nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "user query parameter is required")
	}

	profiles, err := controller.ProfileService.QueryByUser(c.Request().Context(), userID)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, profiles, "query profiles success")
}

func (controller *ProfileController) GetProfile(c echo.Context) error {
	id := utils.ToUUID(c.Param("id"))
	if id == uuid.Nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "invalid profile id")
	}

	profile, err := controller.ProfileService.GetProfileByID(c.Request().Context(), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, profile, "get profile success")
}

func (controller *ProfileController) CreateProfile(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	requestData, err := controller.bindProfile(c)
	if err != nil {
		return err
	}

	profile, errCreate := controller.ProfileService.CreateProfile(c.Request().Context(), userID, requestData)
	if errCreate != nil {
		return controller.ErrorResponse(c, errCreate)
	}
	return controller.CreatedResponse(c, profile, "create profile success")
}

func (controller *ProfileController) UpdateProfile(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	id := utils.ToUUID(c.Param("id"))
	if id == uuid.Nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "invalid profile id")
	}
	requestData, err := controller.bindProfile(c)
	if err != nil {
		return err
	}

	profile, errUpdate := controller.ProfileService.UpdateProfile(c.Request().Context(), userID, id, requestData)
	if errUpdate != nil {
		return controller.ErrorResponse(c, errUpdate)
	}
	return controller.SuccessResponse(c, profile, "update profile success")
}
