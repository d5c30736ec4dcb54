// Package token carries the token verification settings an application
// exposes to its provider runtime. The settings are declarative: the actual
// signature check and JWKS fetch happen inside the provider, not here.
package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variables that configure token verification.
const (
	// EnvIssuer names the expected JWT issuer.
	EnvIssuer = "APOGEE_JWT_ISSUER"
	// EnvJWKSURI names the JWKS endpoint provider runtimes fetch signing
	// keys from.
	EnvJWKSURI = "APOGEE_JWKS_URI"
	// EnvRolesClaim names the claim that carries role names. Optional.
	EnvRolesClaim = "APOGEE_ROLES_CLAIM"
)

// DefaultRolesClaim is the claim consulted when a config names none.
const DefaultRolesClaim = "roles"

var (
	// ErrVerifierConfigRequired indicates a nil verifier config.
	ErrVerifierConfigRequired = errors.New("verifier config is required")
	// ErrIssuerRequired indicates a verifier config without an issuer.
	ErrIssuerRequired = errors.New("token issuer is required")
	// ErrJWKSURIRequired indicates a verifier config without a JWKS URI.
	ErrJWKSURIRequired = errors.New("token JWKS URI is required")
)

type verifierEnv struct {
	Issuer     string `env:"APOGEE_JWT_ISSUER"`
	JWKSURI    string `env:"APOGEE_JWKS_URI"`
	RolesClaim string `env:"APOGEE_ROLES_CLAIM"`
}

// VerifierConfig is the token verification contract between an application
// and its provider runtime.
type VerifierConfig struct {
	// Issuer is the value the token's iss claim must equal.
	Issuer string
	// JWKSURI is where the provider fetches signing keys.
	JWKSURI string
	// RolesClaim names the claim that carries role names. Empty means
	// DefaultRolesClaim.
	RolesClaim string
}

// FromEnv reads verifier settings from the environment. It returns nil with
// no error when the issuer and JWKS URI are not both set, meaning token
// verification is not configured for this application.
func FromEnv() (*VerifierConfig, error) {
	var raw verifierEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse token environment: %w", err)
	}

	issuer := strings.TrimSpace(raw.Issuer)
	jwksURI := strings.TrimSpace(raw.JWKSURI)
	if issuer == "" || jwksURI == "" {
		return nil, nil
	}
	return &VerifierConfig{
		Issuer:     issuer,
		JWKSURI:    jwksURI,
		RolesClaim: strings.TrimSpace(raw.RolesClaim),
	}, nil
}

// Validate reports whether the config is complete enough for a provider
// runtime to verify tokens with.
func (c *VerifierConfig) Validate() error {
	if c == nil {
		return ErrVerifierConfigRequired
	}
	if strings.TrimSpace(c.Issuer) == "" {
		return ErrIssuerRequired
	}
	if strings.TrimSpace(c.JWKSURI) == "" {
		return ErrJWKSURIRequired
	}
	return nil
}
