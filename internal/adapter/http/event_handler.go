package http

import (
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	eventUsecase "temple-membership-backend/internal/usecase/event"

	"github.com/labstack/echo/v4"
)

type EventHandler struct{ uc *eventUsecase.Usecase }

func NewEventHandler(uc *eventUsecase.Usecase) *EventHandler { return &EventHandler{uc: uc} }

// List is public: no principal required.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.uc.List(c.Request().Context())
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, events)
}

type eventReq struct {
	Title             string `json:"title"              validate:"required,min=2"`
	Description       string `json:"description"        validate:"omitempty"`
	EventDate         string `json:"event_date"         validate:"required,datetime=2006-01-02"`
	EventTime         string `json:"event_time"         validate:"omitempty,datetime=15:04"`
	Location          string `json:"location"           validate:"omitempty,max=200"`
	ImageURL          string `json:"image_url"          validate:"omitempty,url"`
	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern" validate:"omitempty,max=64"`
}

func (h *EventHandler) Create(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ev, err := h.uc.Create(c.Request().Context(), p, eventUsecase.EventInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Update(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	eventID := c.Param("event_id")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing event_id path param"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ev, err := h.uc.Update(c.Request().Context(), p, eventID, eventUsecase.EventInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Delete(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	eventID := c.Param("event_id")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing event_id path param"})
	}
	if err := h.uc.Delete(c.Request().Context(), p, eventID); err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.NoContent(http.StatusNoContent)
}
