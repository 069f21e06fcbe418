package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

// OrderInvitationRequest is the request body for POST /api/invitation.
type OrderInvitationRequest struct {
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	FinishDate time.Time `json:"finish_date"`
	TemplateID int       `json:"template_id"`
}

// Validate implements Validator.
func (req OrderInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if req.TemplateID < 1 {
		errs = append(errs, "template_id is required")
	}
	if req.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if req.FinishDate.IsZero() {
		errs = append(errs, "finish_date is required")
	} else if !req.StartDate.IsZero() && !req.FinishDate.After(req.StartDate) {
		errs = append(errs, "finish_date must be after start_date")
	}
	return errs
}

// UpdateInvitationRequest is the request body for PUT /api/invitation/{id}.
// Every field is optional; a missing field keeps its current value.
type UpdateInvitationRequest struct {
	Name       *string    `json:"name"`
	Link       *string    `json:"link"`
	Status     *string    `json:"status"`
	StartDate  *time.Time `json:"start_date"`
	FinishDate *time.Time `json:"finish_date"`
	TemplateID *int       `json:"template_id"`
}

// Validate implements Validator.
func (req UpdateInvitationRequest) Validate() []string {
	var errs []string
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if req.Status != nil {
		if _, err := domain.ParseOrderStatus(*req.Status); err != nil {
			errs = append(errs, "status must be one of ACCEPTED, IN_PROGRESS, DONE, ONLINE, CANCELED")
		}
	}
	if req.TemplateID != nil && *req.TemplateID < 1 {
		errs = append(errs, "template_id must be positive")
	}
	return errs
}

// InvitationController handles invitation order endpoints.
type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

// NewInvitationController creates an InvitationController with the given logger and service.
func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// Order godoc
// @Summary Order an invitation
// @Description Place a new invitation order for the authenticated client. The order starts in status ACCEPTED without a public link.
// @Tags invitation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OrderInvitationRequest true "Order data"
// @Success 201 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation [post]
func (c *InvitationController) Order(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req OrderInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Order(r.Context(), domain.InvitationOrder{
		Name:       req.Name,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
		TemplateID: req.TemplateID,
	}, claims.UserID)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, nil)
}

// ListMine godoc
// @Summary List own invitations
// @Description Returns summaries of the authenticated client's invitation orders.
// @Tags invitation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains invitation summaries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation [get]
func (c *InvitationController) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	res := c.Service.ListByClient(r.Context(), claims.UserID)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// ListByClient godoc
// @Summary List a client's invitations
// @Description Returns summaries of the given client's invitation orders. Admin only.
// @Tags invitation
// @Produce json
// @Security BearerAuth
// @Param clientID path int true "Client ID"
// @Success 200 {object} helpers.APIResponse "data contains invitation summaries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation/client/{clientID} [get]
func (c *InvitationController) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(r.PathValue("clientID"))
	if err != nil || clientID < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid client id")
		return
	}
	res := c.Service.ListByClient(r.Context(), clientID)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// Details godoc
// @Summary Get invitation details
// @Description Returns the invitation, its template, and the guests who accepted.
// @Tags invitation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} helpers.APIResponse "data contains the invitation details"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation/{id} [get]
func (c *InvitationController) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid invitation id")
		return
	}
	res := c.Service.Details(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// Update godoc
// @Summary Update an invitation
// @Description Partially update an invitation order. Missing fields keep their values. Setting status to ONLINE without a link assigns a generated one. Admin only.
// @Tags invitation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Param body body UpdateInvitationRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation/{id} [put]
func (c *InvitationController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid invitation id")
		return
	}
	var req UpdateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.InvitationUpdate{
		ID:         id,
		Name:       req.Name,
		Link:       req.Link,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
		TemplateID: req.TemplateID,
	}
	if req.Status != nil {
		status, _ := domain.ParseOrderStatus(*req.Status)
		update.Status = &status
	}
	res := c.Service.Update(r.Context(), update)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Delete godoc
// @Summary Delete an invitation
// @Description Deletes the invitation order with the given id. Admin only.
// @Tags invitation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitation/{id} [delete]
func (c *InvitationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid invitation id")
		return
	}
	res := c.Service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
