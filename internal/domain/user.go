package domain

import "context"

// Role is an application role carried in the auth token.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a claim value to a Role. Unknown values are rejected so a
// tampered or stale claim never grants access.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User represents a registered account. Clients order invitations; admins
// manage orders, templates, and accounts.
// swagger:model User
type User struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	OtherContact *string `json:"other_contact,omitempty"`
	IsAdmin      bool    `json:"is_admin"`
}

// EntityID implements Entity.
func (u *User) EntityID() int { return u.ID }

// Role returns the role implied by the admin flag.
func (u *User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// UserFilter selects which accounts a listing returns.
type UserFilter int

const (
	UserFilterAll UserFilter = iota
	UserFilterClients
	UserFilterAdmins
)

// UserPage is one page of a user listing.
type UserPage struct {
	Users []*User `json:"users"`
	Total int     `json:"total"`
}

// AuthPayload is the outcome of a successful registration or login.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterInput holds the fields needed to create an account.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	PhoneNumber  *string
	OtherContact *string
}

// UserUpdate is a partial account update. Nil means "leave unchanged" for
// every field; the email is immutable.
type UserUpdate struct {
	ID           int
	Name         *string
	Password     *string
	PhoneNumber  *string
	OtherContact *string
}

// UserRepository extends the generic contract with the natural-key finder and
// paginated listing used by account management.
type UserRepository interface {
	Repository[*User]
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter, p PaginationParams) ([]*User, int, error)
}

// UserService defines account and credential operations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput, asAdmin bool) Result[*AuthPayload]
	Login(ctx context.Context, email, password string) Result[*AuthPayload]
	GetByID(ctx context.Context, id int) Result[*User]
	GetByEmail(ctx context.Context, email string) Result[*User]
	List(ctx context.Context, filter UserFilter, p PaginationParams) Result[*UserPage]
	Update(ctx context.Context, input UserUpdate) Empty
	Delete(ctx context.Context, id int) Empty
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed bearer tokens for an authenticated user.
// Development tokens carry a long validity window for local tooling.
type TokenIssuer interface {
	Issue(userID int, email string, role Role) (string, error)
	IssueDevelopment(userID int, email string, role Role) (string, error)
}

// TokenClaims is the verified identity extracted from a bearer token.
type TokenClaims struct {
	UserID int
	Email  string
	Role   Role
}

// TokenVerifier verifies a token's signature and lifetime and returns its
// claims. Verification happens once, in the auth middleware.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
