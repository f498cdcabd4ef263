package controller

import (
	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/core/params"
	"pickup/modules/notification/dto"
	"pickup/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

// GetMyNotifications lists the caller's notifications, newest first.
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page_number query int false "page number"
// @Param page_size query int false "page size"
// @Router /notifications [get]
func (controller *NotificationController) GetMyNotifications(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	result, errGet := controller.NotificationService.GetMyNotifications(c.Request().Context(), userID, *params.NewQueryParams(c))
	if errGet != nil {
		return controller.ErrorResponse(c, errGet)
	}
	return controller.SuccessResponse(c, result, "get notifications success")
}

// MarkAsRead
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Param request body dto.MarkAsReadRequest true "notification ids"
// @Router /notifications/mark-read [put]
func (controller *NotificationController) MarkAsRead(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	req := new(dto.MarkAsReadRequest)
	if err := c.Bind(req); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if errMark := controller.NotificationService.MarkAsRead(c.Request().Context(), userID, req.IDs); errMark != nil {
		return controller.ErrorResponse(c, errMark)
	}
	return controller.SuccessResponse(c, nil, "mark as read success")
}

func (controller *NotificationController) MarkAllAsRead(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	if errMark := controller.NotificationService.MarkAllAsRead(c.Request().Context(), userID); errMark != nil {
		return controller.ErrorResponse(c, errMark)
	}
	return controller.SuccessResponse(c, nil, "mark all as read success")
}

func (controller *NotificationController) CountUnread(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}

	count, errCount := controller.NotificationService.CountUnread(c.Request().Context(), userID)
	if errCount != nil {
		return controller.ErrorResponse(c, errCount)
	}
	return controller.SuccessResponse(c, dto.UnreadCountResponse{Count: count}, "count unread success")
}
