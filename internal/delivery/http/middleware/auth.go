package middleware

import (
	"context"
	"net/http"
	"strings"

	h "inholiday/internal/delivery/http/helpers"
	"inholiday/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthCookieName is the cookie the login and register endpoints mirror the
// bearer token into, read back when the Authorization header is absent.
const AuthCookieName = "token"

// SetClaims returns a context with the verified token claims set.
func SetClaims(ctx context.Context, claims *domain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated claims from the context, if present.
func ClaimsFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.TokenClaims)
	return claims, ok
}

// RequireAuth returns a wrapper that validates the bearer token and sets the
// verified claims in the request context. The token comes from the
// Authorization header, falling back to the auth cookie. If the token is
// missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := bearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, errMsg)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetClaims(r.Context(), claims))
			next(w, r)
		}
	}
}

// RequireRole returns a wrapper that, on top of RequireAuth, rejects requests
// whose verified role does not match with 403.
func RequireRole(verifier domain.TokenVerifier, role domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	auth := RequireAuth(verifier)
	return func(next http.HandlerFunc) http.HandlerFunc {
		return auth(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "insufficient permissions")
				return
			}
			next(w, r)
		})
	}
}

func bearerToken(r *http.Request) (token, errMsg string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		if c, err := r.Cookie(AuthCookieName); err == nil && c.Value != "" {
			return c.Value, ""
		}
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}
