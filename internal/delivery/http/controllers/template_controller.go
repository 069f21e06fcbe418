package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/domain"
)

// CreateTemplateRequest is the request body for POST /api/template.
type CreateTemplateRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	FilePath    string `json:"file_path"`
	PreviewPath string `json:"preview_path"`
	EventTypeID int    `json:"event_type_id"`
}

// Validate implements Validator.
func (req CreateTemplateRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if req.Price < 0 {
		errs = append(errs, "price cannot be negative")
	}
	if strings.TrimSpace(req.FilePath) == "" {
		errs = append(errs, "file_path is required")
	}
	if strings.TrimSpace(req.PreviewPath) == "" {
		errs = append(errs, "preview_path is required")
	}
	if req.EventTypeID < 1 {
		errs = append(errs, "event_type_id is required")
	}
	return errs
}

// UpdateTemplateRequest is the request body for PUT /api/template/{id}.
// Every field is optional; a missing field keeps its current value.
type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	FilePath    *string `json:"file_path"`
	PreviewPath *string `json:"preview_path"`
	EventTypeID *int    `json:"event_type_id"`
}

// Validate implements Validator.
func (req UpdateTemplateRequest) Validate() []string {
	var errs []string
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		errs = append(errs, "price cannot be negative")
	}
	if req.EventTypeID != nil && *req.EventTypeID < 1 {
		errs = append(errs, "event_type_id must be positive")
	}
	return errs
}

// TemplateListResponse is the response body for GET /api/template.
type TemplateListResponse struct {
	Templates  []*domain.Template     `json:"templates"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// TemplateController handles invitation template endpoints.
type TemplateController struct {
	Logger  *slog.Logger
	Service domain.TemplateService
}

// NewTemplateController creates a TemplateController with the given logger and service.
func NewTemplateController(logger *slog.Logger, svc domain.TemplateService) *TemplateController {
	return &TemplateController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List templates
// @Description Returns a page of invitation templates.
// @Tags template
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains templates and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/template [get]
func (c *TemplateController) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	res := c.Service.List(r.Context(), p)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	page := res.Value()
	helpers.WriteJSONSuccess(w, http.StatusOK, TemplateListResponse{
		Templates:  page.Templates,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, page.Total),
	})
}

// Details godoc
// @Summary Get template details
// @Description Returns the template and its event type.
// @Tags template
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} helpers.APIResponse "data contains the template details"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/template/{id} [get]
func (c *TemplateController) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid template id")
		return
	}
	res := c.Service.Details(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res.Value())
}

// Create godoc
// @Summary Create a template
// @Description Creates a new invitation template. The name must be unique. Admin only.
// @Tags template
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTemplateRequest true "Template data"
// @Success 201 {object} helpers.APIResponse "data contains the created template"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/template [post]
func (c *TemplateController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Add(r.Context(), domain.TemplateInput{
		Name:        req.Name,
		Price:       req.Price,
		FilePath:    req.FilePath,
		PreviewPath: req.PreviewPath,
		EventTypeID: req.EventTypeID,
	})
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res.Value())
}

// Update godoc
// @Summary Update a template
// @Description Partially update a template. Missing fields keep their values; a new name must be unique. Admin only.
// @Tags template
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Param body body UpdateTemplateRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/template/{id} [put]
func (c *TemplateController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid template id")
		return
	}
	var req UpdateTemplateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Update(r.Context(), domain.TemplateUpdate{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		FilePath:    req.FilePath,
		PreviewPath: req.PreviewPath,
		EventTypeID: req.EventTypeID,
	})
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Delete godoc
// @Summary Delete a template
// @Description Deletes the template with the given id. Admin only.
// @Tags template
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/template/{id} [delete]
func (c *TemplateController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid template id")
		return
	}
	res := c.Service.Delete(r.Context(), id)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
