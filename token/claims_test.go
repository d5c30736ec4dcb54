package token

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestRolesFromClaims(t *testing.T) {
	cases := []struct {
		name       string
		claims     jwt.MapClaims
		rolesClaim string
		want       []string
	}{
		{
			name:   "missing claim",
			claims: jwt.MapClaims{"sub": "user-1"},
		},
		{
			name:   "single string",
			claims: jwt.MapClaims{"roles": "Admin"},
			want:   []string{"Admin"},
		},
		{
			name:   "empty string",
			claims: jwt.MapClaims{"roles": ""},
		},
		{
			name:   "decoded list",
			claims: jwt.MapClaims{"roles": []any{"Admin", "Support"}},
			want:   []string{"Admin", "Support"},
		},
		{
			name:   "list with non-string entries",
			claims: jwt.MapClaims{"roles": []any{"Admin", 7, "", "Support"}},
			want:   []string{"Admin", "Support"},
		},
		{
			name:   "string slice",
			claims: jwt.MapClaims{"roles": []string{"Admin", "", "Support"}},
			want:   []string{"Admin", "Support"},
		},
		{
			name:   "unsupported value",
			claims: jwt.MapClaims{"roles": 12},
		},
		{
			name:       "custom claim name",
			claims:     jwt.MapClaims{"custom:roles": []any{"Auditor"}},
			rolesClaim: "custom:roles",
			want:       []string{"Auditor"},
		},
		{
			name:       "blank claim name falls back to default",
			claims:     jwt.MapClaims{"roles": "Admin"},
			rolesClaim: "   ",
			want:       []string{"Admin"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RolesFromClaims(tc.claims, tc.rolesClaim)
			if len(got) != len(tc.want) {
				t.Fatalf("RolesFromClaims = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("RolesFromClaims = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestRolesFromToken(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"roles": []any{"Admin"},
	})

	roles, err := RolesFromToken(tok, "")
	if err != nil {
		t.Fatalf("RolesFromToken: %v", err)
	}
	if len(roles) != 1 || roles[0] != "Admin" {
		t.Fatalf("roles = %v, want [Admin]", roles)
	}
}

func TestRolesFromTokenNil(t *testing.T) {
	if _, err := RolesFromToken(nil, ""); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}

func TestRolesFromTokenUnsupportedClaims(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: "user-1"})

	if _, err := RolesFromToken(tok, ""); !errors.Is(err, ErrClaimsUnsupported) {
		t.Fatalf("expected ErrClaimsUnsupported, got %v", err)
	}
}
