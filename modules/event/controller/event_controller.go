package controller

import (
	"net/http"

	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/middleware"
	"pickup/core/params"
	"pickup/core/utils"
	"pickup/modules/event/dto"
	"pickup/modules/event/service"
	"pickup/modules/event/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

func (controller *EventController) eventID(c echo.Context) (uuid.UUID, error) {
	id := utils.ToUUID(c.Param("id"))
	if id == uuid.Nil {
		return uuid.Nil, controller.BadRequest(errors.ErrInvalidRequestData, "invalid event id")
	}
	return id, nil
}

func (controller *EventController) bindEvent(c echo.Context) (*dto.EventRequest, error) {
	requestData := new(dto.EventRequest)
	if err := c.Bind(requestData); err != nil {
		return nil, controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}
	validationResult := validator.ValidateEventRequest(requestData)
	if validationResult.HasError() {
		return nil, controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}
	return requestData, nil
}

// GetEvents lists events ordered by start time.
// @Summary List events
// @Tags Event
// @Produce json
// @Param search query string false "Name or activity filter"
// @Router /events [get]
func (controller *EventController) GetEvents(c echo.Context) error {
	queryParams := params.NewListParams(c)

	events, err := controller.EventService.GetEvents(c.Request().Context(), *queryParams)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, events, "get events success")
}

// @Summary Get an event
// @Tags Event
// @Router /events/{id} [get]
func (controller *EventController) GetEvent(c echo.Context) error {
	id, err := controller.eventID(c)
	if err != nil {
		return err
	}

	event, errGet := controller.EventService.GetEventByID(c.Request().Context(), id)
	if errGet != nil {
		return controller.ErrorResponse(c, errGet)
	}
	return controller.SuccessResponse(c, event, "get event success")
}

// @Summary Export an event as iCalendar
// @Tags Event
// @Produce text/calendar
// @Router /events/{id}/ics [get]
func (controller *EventController) ExportEvent(c echo.Context) error {
	id, err := controller.eventID(c)
	if err != nil {
		return err
	}

	doc, errExport := controller.EventService.ExportICS(c.Request().Context(), id)
	if errExport != nil {
		return controller.ErrorResponse(c, errExport)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+id.String()+`.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}

// @Summary Create an event
// @Tags Event
// @Security BearerAuth
// @Router /events [post]
func (controller *EventController) CreateEvent(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	requestData, err := controller.bindEvent(c)
	if err != nil {
		return err
	}

	created, errCreate := controller.EventService.CreateEvent(c.Request().Context(), userID, requestData)
	if errCreate != nil {
		return controller.ErrorResponse(c, errCreate)
	}
	return controller.CreatedResponse(c, created, "create event success")
}

// @Summary Update an event, returning every event
// @Tags Event
// @Security BearerAuth
// @Router /events/{id} [put]
func (controller *EventController) UpdateEvent(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	id, err := controller.eventID(c)
	if err != nil {
		return err
	}
	requestData, err := controller.bindEvent(c)
	if err != nil {
		return err
	}

	events, errUpdate := controller.EventService.UpdateEvent(c.Request().Context(), userID, id, requestData)
	if errUpdate != nil {
		return controller.ErrorResponse(c, errUpdate)
	}
	return controller.SuccessResponse(c, events, "update event success")
}

// @Summary Delete an event, returning every remaining event
// @Tags Event
// @Security BearerAuth
// @Router /events/{id} [delete]
func (controller *EventController) DeleteEvent(c echo.Context) error {
	userID, errAuth := middleware.UserID(c)
	if errAuth != nil {
		return controller.ErrorResponse(c, errAuth)
	}
	id, err := controller.eventID(c)
	if err != nil {
		return err
	}

	events, errDelete := controller.EventService.DeleteEvent(c.Request().Context(), userID, id)
	if errDelete != nil {
		return controller.ErrorResponse(c, errDelete)
	}
	return controller.SuccessResponse(c, events, "delete event success")
}
