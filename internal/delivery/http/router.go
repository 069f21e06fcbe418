package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"inholiday/internal/delivery/http/controllers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth       *controllers.AuthController
	Account    *controllers.AccountController
	Invitation *controllers.InvitationController
	Template   *controllers.TemplateController
	EventType  *controllers.EventTypeController
	Guest      *controllers.GuestController
	Dev        *controllers.DevController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	admin := middleware.RequireRole(verifier, domain.RoleAdmin)

	// Auth
	mux.HandleFunc("POST /api/auth/register", c.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("POST /api/auth/admin/register", admin(c.Auth.RegisterAdmin))

	// Account
	mux.HandleFunc("GET /api/account", auth(c.Account.GetMe))
	mux.HandleFunc("PUT /api/account", auth(c.Account.UpdateMe))
	mux.HandleFunc("GET /api/account/clients", admin(c.Account.ListClients))
	mux.HandleFunc("GET /api/account/admins", admin(c.Account.ListAdmins))
	mux.HandleFunc("DELETE /api/account/{id}", admin(c.Account.Delete))

	// Invitations
	mux.HandleFunc("POST /api/invitation", auth(c.Invitation.Order))
	mux.HandleFunc("GET /api/invitation", auth(c.Invitation.ListMine))
	mux.HandleFunc("GET /api/invitation/{id}", auth(c.Invitation.Details))
	mux.HandleFunc("GET /api/invitation/client/{clientID}", admin(c.Invitation.ListByClient))
	mux.HandleFunc("PUT /api/invitation/{id}", admin(c.Invitation.Update))
	mux.HandleFunc("DELETE /api/invitation/{id}", admin(c.Invitation.Delete))

	// Templates
	mux.HandleFunc("GET /api/template", c.Template.List)
	mux.HandleFunc("GET /api/template/{id}", c.Template.Details)
	mux.HandleFunc("POST /api/template", admin(c.Template.Create))
	mux.HandleFunc("PUT /api/template/{id}", admin(c.Template.Update))
	mux.HandleFunc("DELETE /api/template/{id}", admin(c.Template.Delete))

	// Event types
	mux.HandleFunc("GET /api/event-type", c.EventType.List)
	mux.HandleFunc("POST /api/event-type", admin(c.EventType.Create))
	mux.HandleFunc("PUT /api/event-type/{id}", admin(c.EventType.Update))
	mux.HandleFunc("DELETE /api/event-type/{id}", admin(c.EventType.Delete))

	// Guests: taking an invitation is public, guests are not registered users.
	mux.HandleFunc("POST /api/guest", c.Guest.Take)
	mux.HandleFunc("DELETE /api/guest/{id}", admin(c.Guest.Delete))

	// Dev helpers
	mux.HandleFunc("GET /time", c.Dev.Time)
	mux.HandleFunc("GET /whoami", auth(c.Dev.WhoAmI))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
