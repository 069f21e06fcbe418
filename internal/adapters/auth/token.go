package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inholiday/internal/domain"
)

const (
	tokenIssuer   = "inHolidayServer"
	tokenAudience = "inHolidayClient"

	// Development tokens stay valid long enough for local tooling.
	developmentTTL = 365 * 24 * time.Hour
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTCodec issues and verifies HS256 bearer tokens carrying the user id,
// email, and role. It implements both domain.TokenIssuer and
// domain.TokenVerifier.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec returns a codec signing with secret; ttl is the validity window
// of regular tokens.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

func (c *JWTCodec) Issue(userID int, email string, role domain.Role) (string, error) {
	return c.issue(userID, email, role, c.ttl)
}

func (c *JWTCodec) IssueDevelopment(userID int, email string, role domain.Role) (string, error) {
	return c.issue(userID, email, role, developmentTTL)
}

func (c *JWTCodec) issue(userID int, email string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, lifetime, issuer, and audience, and returns
// the identity claims.
func (c *JWTCodec) Verify(token string) (*domain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{},
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim %q", claims.Subject)
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return nil, fmt.Errorf("invalid role claim %q", claims.Role)
	}
	return &domain.TokenClaims{UserID: userID, Email: claims.Email, Role: role}, nil
}

// PeekEmail extracts the email claim without verifying the signature. It must
// only be called on tokens that already passed Verify in the auth middleware;
// a malformed token yields an empty string.
func PeekEmail(token string) string {
	claims := &jwtClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Email
}
