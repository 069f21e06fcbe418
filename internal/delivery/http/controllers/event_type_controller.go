package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/domain"
)

// EventTypeRequest is the request body for creating or renaming an event type.
type EventTypeRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (req EventTypeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// EventTypeController handles event type endpoints.
type EventTypeController struct {
	Logger  *slog.Logger
	Service domain.EventTypeService
}

// NewEventTypeController creates an EventTypeController with the given logger and service.
func NewEventTypeController(logger *slog.Logger, svc domain.EventTypeService) *EventTypeController {
	return &EventTypeController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List event types
// @Description Returns all event types sorted by name.
// @Tags event-type
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains event types"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type [get]
func (c *EventTypeController) List(w http.ResponseWriter, r *http.Request) {
	res := c.Service.List(r.Context())
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// Create godoc
// @Summary Create an event type
// @Description Creates a new event type. The name must be unique. Admin only.
// @Tags event-type
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventTypeRequest true "Event type data"
// @Success 201 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type [post]
func (c *EventTypeController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Add(r.Context(), req.Name)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, nil)
}

// Update godoc
// @Summary Rename an event type
// @Description Renames the event type with the given id. The new name must be unique. Admin only.
// @Tags event-type
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event type ID"
// @Param body body EventTypeRequest true "New name"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type/{id} [put]
func (c *EventTypeController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event type id")
		return
	}
	var req EventTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Update(r.Context(), id, req.Name)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Delete godoc
// @Summary Delete an event type
// @Description Deletes the event type with the given id. Admin only.
// @Tags event-type
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event type ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type/{id} [delete]
func (c *EventTypeController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event type id")
		return
	}
	res := c.Service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
