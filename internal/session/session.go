package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// RoleCustomer is the restricted role: customers only see their own rules
// and cannot create new ones.
const RoleCustomer = "Customer"

var ErrNoToken = errors.New("no access token")

// Session carries the caller's credential and identity. It is built once
// and passed explicitly to everything that needs it, there is no ambient
// session storage.
type Session struct {
	Token  string
	UserID string
	Role   string
}

// New builds a session from an access token and explicit identity fields.
// When userID or role are empty they are filled from the token claims.
func New(token, userID, role string) (*Session, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	s := &Session{Token: token, UserID: userID, Role: role}
	if s.UserID != "" && s.Role != "" {
		return s, nil
	}

	// The client holds no signing secret, so claims are read unverified.
	// The server verifies the signature on every request anyway.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if s.UserID == "" {
		if id, ok := claims["user_id"].(string); ok {
			s.UserID = id
		}
	}
	if s.Role == "" {
		if role, ok := claims["role"].(string); ok {
			s.Role = role
		}
	}
	return s, nil
}

// Restricted reports whether rule visibility is scoped to this user only
func (s *Session) Restricted() bool {
	return s.Role == RoleCustomer
}
