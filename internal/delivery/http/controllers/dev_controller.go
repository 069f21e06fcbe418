package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

// WhoAmIResponse is the response body for GET /whoami.
type WhoAmIResponse struct {
	UserID int         `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	// DevToken is a long-lived token for local tooling, present only when the
	// server runs in development mode.
	DevToken string `json:"dev_token,omitempty"`
}

// DevController serves the development helper endpoints. Tokens is nil in
// production, which disables dev token issuance.
type DevController struct {
	Logger *slog.Logger
	Tokens domain.TokenIssuer
}

// NewDevController creates a DevController. Pass a nil issuer outside development.
func NewDevController(logger *slog.Logger, tokens domain.TokenIssuer) *DevController {
	return &DevController{
		Logger: logger,
		Tokens: tokens,
	}
}

// Time godoc
// @Summary Server time
// @Description Returns the current server time in UTC. Used as a liveness probe.
// @Tags dev
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the server time"
// @Router /time [get]
func (c *DevController) Time(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// WhoAmI godoc
// @Summary Authenticated identity
// @Description Returns the verified claims of the caller's token. In development mode the response also carries a long-lived token for local tooling.
// @Tags dev
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the token claims"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /whoami [get]
func (c *DevController) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	resp := WhoAmIResponse{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if c.Tokens != nil {
		token, err := c.Tokens.IssueDevelopment(claims.UserID, claims.Email, claims.Role)
		if err != nil {
			c.Logger.ErrorContext(r.Context(), "failed to issue dev token", "err", err)
		} else {
			resp.DevToken = token
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
