package services

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thentamil/novelreader/internal/client/models"
)

// userFromToken rebuilds a user record from the bearer token's claims.
// The signature is deliberately not verified: the client has no key
// material, and the token is only trusted as far as the server honoring it.
func userFromToken(token string) (*models.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	u := &models.User{}
	if v, ok := claims["id"].(string); ok {
		u.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		u.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		u.Role = models.Role(v)
	}
	if v, ok := claims["full_name"].(string); ok && v != "" {
		u.Name = v
	} else if u.Email != "" {
		u.Name = strings.SplitN(u.Email, "@", 2)[0]
	}

	if u.ID == "" && u.Email == "" {
		return nil, errors.New("token claims carry no user identity")
	}
	return u, nil
}
