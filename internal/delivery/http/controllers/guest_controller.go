package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/domain"
)

// TakeInvitationRequest is the request body for POST /api/guest.
type TakeInvitationRequest struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	InvitationID int    `json:"invitation_id"`
}

// Validate implements Validator.
func (req TakeInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		errs = append(errs, "phone_number is required")
	} else if !phoneRegexp.MatchString(req.PhoneNumber) {
		errs = append(errs, "invalid phone number format")
	}
	if req.InvitationID < 1 {
		errs = append(errs, "invitation_id is required")
	}
	return errs
}

// GuestController handles guest response endpoints. Taking an invitation is
// public: guests follow a link and are not registered users.
type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

// NewGuestController creates a GuestController with the given logger and service.
func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// Take godoc
// @Summary Accept an invitation
// @Description Records a guest's acceptance of an invitation. The same phone number may accept a given invitation only once.
// @Tags guest
// @Accept json
// @Produce json
// @Param body body TakeInvitationRequest true "Guest response"
// @Success 201 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guest [post]
func (c *GuestController) Take(w http.ResponseWriter, r *http.Request) {
	var req TakeInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.TakeInvitation(r.Context(), domain.GuestResponseInput{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		InvitationID: req.InvitationID,
	})
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, nil)
}

// Delete godoc
// @Summary Delete a guest response
// @Description Deletes the guest response with the given id. Admin only.
// @Tags guest
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guest/{id} [delete]
func (c *GuestController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid guest id")
		return
	}
	res := c.Service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
