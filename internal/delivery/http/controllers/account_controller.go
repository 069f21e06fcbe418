package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

// UpdateAccountRequest is the request body for PUT /api/account. Every field is
// optional; a missing field keeps its current value. The email is immutable.
type UpdateAccountRequest struct {
	Name         *string `json:"name"`
	Password     *string `json:"password"`
	PhoneNumber  *string `json:"phone_number"`
	OtherContact *string `json:"other_contact"`
}

// Validate implements Validator.
func (req UpdateAccountRequest) Validate() []string {
	var errs []string
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if req.Password != nil && len(*req.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if req.PhoneNumber != nil && !phoneRegexp.MatchString(*req.PhoneNumber) {
		errs = append(errs, "invalid phone number format")
	}
	return errs
}

// UserListResponse is the response body for the user listing endpoints.
type UserListResponse struct {
	Users      []*domain.User         `json:"users"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// AccountController handles account management endpoints.
type AccountController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewAccountController creates an AccountController with the given logger and service.
func NewAccountController(logger *slog.Logger, svc domain.UserService) *AccountController {
	return &AccountController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMe godoc
// @Summary Get current account
// @Description Returns the authenticated user's account. Requires Bearer token.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/account [get]
func (c *AccountController) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	res := c.Service.GetByID(r.Context(), claims.UserID)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// UpdateMe godoc
// @Summary Update current account
// @Description Partially update the authenticated user's account. Missing fields keep their values; the email cannot change. Requires Bearer token.
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateAccountRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/account [put]
func (c *AccountController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req UpdateAccountRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Update(r.Context(), domain.UserUpdate{
		ID:           claims.UserID,
		Name:         req.Name,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		OtherContact: req.OtherContact,
	})
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ListClients godoc
// @Summary List client accounts
// @Description Returns a page of non-admin accounts. Admin only.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains users and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/account/clients [get]
func (c *AccountController) ListClients(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.UserFilterClients)
}

// ListAdmins godoc
// @Summary List admin accounts
// @Description Returns a page of admin accounts. Admin only.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains users and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/account/admins [get]
func (c *AccountController) ListAdmins(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.UserFilterAdmins)
}

func (c *AccountController) list(w http.ResponseWriter, r *http.Request, filter domain.UserFilter) {
	p := helpers.ParsePagination(r)
	res := c.Service.List(r.Context(), filter, p)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	page := res.Value()
	helpers.WriteJSONSuccess(w, http.StatusOK, UserListResponse{
		Users:      page.Users,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, page.Total),
	})
}

// Delete godoc
// @Summary Delete an account
// @Description Deletes the account with the given id. Admin only.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/account/{id} [delete]
func (c *AccountController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid user id")
		return
	}
	res := c.Service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
