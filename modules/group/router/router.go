package router

import (
	"pickup/core/middleware"
	"pickup/modules/group/controller"

	"github.com/labstack/echo/v4"
)

type GroupRouter struct {
	GroupController *controller.GroupController
}

func NewGroupRouter(groupController *controller.GroupController) *GroupRouter {
	return &GroupRouter{GroupController: groupController}
}

func (r *GroupRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	groups := v1.Group("/groups")

	groups.GET("", r.GroupController.GetGroups)
	groups.GET("/:id", r.GroupController.GetGroupById)

	groups.POST("", r.GroupController.CreateGroup, mw.AuthMiddleware())
	groups.PUT("/:id", r.GroupController.UpdateGroup, mw.AuthMiddleware())
	groups.DELETE("/:id", r.GroupController.DeleteGroup, mw.AuthMiddleware())
	groups.POST("/:id/join", r.GroupController.JoinGroup, mw.AuthMiddleware())
}
