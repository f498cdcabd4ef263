package controller

import (
	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/core/params"
	"pickup/core/utils"
	"pickup/modules/group/dto"
	"pickup/modules/group/service"
	"pickup/modules/group/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GroupController struct {
	controller.BaseController
	GroupService service.GroupServiceInterface
}

func NewGroupController(svc service.GroupServiceInterface) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		GroupService:   svc,
	}
}

func (controller *GroupController) groupID(c echo.Context) (uuid.UUID, error) {
	groupId := utils.ToUUID(c.Param("id"))
	if groupId == uuid.Nil {
		return uuid.Nil, controller.BadRequest(errors.ErrInvalidRequestData, "invalid group id")
	}
	return groupId, nil
}

func (controller *GroupController) bindGroup(c echo.Context) (*dto.GroupRequest, error) {
	requestData := new(dto.GroupRequest)
	if err := c.Bind(requestData); err != nil {
		return nil, controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	validationResult := validator.ValidateGroupRequest(requestData)
	if validationResult.HasError() {
		return nil, controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}
	return requestData, nil
}

func (controller *GroupController) CreateGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	requestData, err := controller.bindGroup(c)
	if err != nil {
		return err
	}

	group, errCreate := controller.GroupService.CreateGroup(ctx, userID, requestData)
	if errCreate != nil {
		return controller.ErrorResponse(c, errCreate)
	}

	return controller.CreatedResponse(c, group, "create group success")
}

func (controller *GroupController) GetGroupById(c echo.Context) error {
	ctx := c.Request().Context()

	groupId, err := controller.groupID(c)
	if err != nil {
		return err
	}

	group, errGet := controller.GroupService.GetGroupByID(ctx, groupId)
	if errGet != nil {
		return controller.ErrorResponse(c, errGet)
	}

	return controller.SuccessResponse(c, group, "get group success")
}

func (controller *GroupController) UpdateGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	groupId, err := controller.groupID(c)
	if err != nil {
		return err
	}
	requestData, err := controller.bindGroup(c)
	if err != nil {
		return err
	}

	groups, errUpdate := controller.GroupService.UpdateGroup(ctx, userID, groupId, requestData)
	if errUpdate != nil {
		return controller.ErrorResponse(c, errUpdate)
	}

	return controller.SuccessResponse(c, groups, "update group success")
}

func (controller *GroupController) DeleteGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	groupId, err := controller.groupID(c)
	if err != nil {
		return err
	}

	groups, errDelete := controller.GroupService.DeleteGroup(ctx, userID, groupId)
	if errDelete != nil {
		return controller.ErrorResponse(c, errDelete)
	}

	return controller.SuccessResponse(c, groups, "delete group success")
}

func (controller *GroupController) JoinGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	groupId, err := controller.groupID(c)
	if err != nil {
		return err
	}

	group, errJoin := controller.GroupService.JoinGroup(ctx, userID, groupId)
	if errJoin != nil {
		return controller.ErrorResponse(c, errJoin)
	}

	return controller.SuccessResponse(c, group, "join group success")
}

func (controller *GroupController) GetGroups(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewListParams(c)

	groups, err := controller.GroupService.GetGroups(ctx, *queryParams)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, groups, "get groups success")
}
