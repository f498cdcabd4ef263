package router

import (
	"pickup/core/middleware"
	"pickup/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(ctrl *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{NotificationController: ctrl}
}

func (r *NotificationRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	notifications := v1.Group("/notifications", mw.AuthMiddleware())

	notifications.GET("", r.NotificationController.GetMyNotifications)
	notifications.GET("/unread-count", r.NotificationController.CountUnread)
	notifications.PUT("/mark-read", r.NotificationController.MarkAsRead)
	notifications.PUT("/mark-all-read", r.NotificationController.MarkAllAsRead)
}
