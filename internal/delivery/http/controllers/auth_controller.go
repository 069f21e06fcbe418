package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9 ()-]{5,20}$`)
)

// RegisterRequest is the request body for POST /api/auth/register and
// POST /api/auth/admin/register.
type RegisterRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	PhoneNumber  *string `json:"phone_number"`
	OtherContact *string `json:"other_contact"`
}

// Validate implements Validator.
func (req RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	} else if len(req.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if req.PhoneNumber != nil && !phoneRegexp.MatchString(*req.PhoneNumber) {
		errs = append(errs, "invalid phone number format")
	}
	return errs
}

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (req LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, "email is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AuthResponse is the response body for register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// AuthController handles registration and login.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewAuthController creates an AuthController with the given logger and service.
func NewAuthController(logger *slog.Logger, svc domain.UserService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a client account
// @Description Create a client account with name, email, and password. Returns a JWT and the user; the token is also mirrored into an auth cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	c.register(w, r, false)
}

// RegisterAdmin godoc
// @Summary Register an admin account
// @Description Create an admin account. Only an existing admin may call this.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/admin/register [post]
func (c *AuthController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	c.register(w, r, true)
}

func (c *AuthController) register(w http.ResponseWriter, r *http.Request, asAdmin bool) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Register(r.Context(), domain.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		OtherContact: req.OtherContact,
	}, asAdmin)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}

	payload := res.Value()
	setAuthCookie(w, payload.Token)
	helpers.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{
		Token:     payload.Token,
		TokenType: "Bearer",
		User:      payload.User,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. A credential mismatch is reported as not found, never revealing which part was wrong.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Service.Login(r.Context(), req.Email, req.Password)
	if !res.IsSuccess() {
		helpers.WriteServiceError(w, r, c.Logger, res.Err())
		return
	}

	payload := res.Value()
	setAuthCookie(w, payload.Token)
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthResponse{
		Token:     payload.Token,
		TokenType: "Bearer",
		User:      payload.User,
	})
}

// setAuthCookie mirrors the bearer token into a cookie so browser clients can
// authenticate without managing the Authorization header themselves.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
