package token

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenRequired indicates a nil token.
	ErrTokenRequired = errors.New("token is required")
	// ErrClaimsUnsupported indicates a token whose claims are not map
	// claims, so no roles claim can be read from them.
	ErrClaimsUnsupported = errors.New("token claims are not map claims")
)

// RolesFromClaims extracts role names from verified claims. The claim may
// hold a single string or a list of strings; empty entries and values of
// other types are ignored. An empty rolesClaim falls back to
// DefaultRolesClaim.
func RolesFromClaims(claims jwt.MapClaims, rolesClaim string) []string {
	rolesClaim = strings.TrimSpace(rolesClaim)
	if rolesClaim == "" {
		rolesClaim = DefaultRolesClaim
	}

	switch value := claims[rolesClaim].(type) {
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	case []string:
		roles := make([]string, 0, len(value))
		for _, role := range value {
			if role == "" {
				continue
			}
			roles = append(roles, role)
		}
		if len(roles) == 0 {
			return nil
		}
		return roles
	case []any:
		roles := make([]string, 0, len(value))
		for _, item := range value {
			role, ok := item.(string)
			if !ok || role == "" {
				continue
			}
			roles = append(roles, role)
		}
		if len(roles) == 0 {
			return nil
		}
		return roles
	}
	return nil
}

// RolesFromToken extracts role names from a verified token.
func RolesFromToken(t *jwt.Token, rolesClaim string) ([]string, error) {
	if t == nil {
		return nil, ErrTokenRequired
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrClaimsUnsupported
	}
	return RolesFromClaims(claims, rolesClaim), nil
}
