package apogee

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderRequired indicates a nil runtime passed to SetProvider.
	ErrProviderRequired = errors.New("provider runtime is required")
	// ErrProviderAlreadySet indicates a second SetProvider call. The
	// provider is wired once during initialization and never swapped.
	ErrProviderAlreadySet = errors.New("provider runtime is already set")
	// ErrProviderNotSet indicates the provider runtime was never wired.
	ErrProviderNotSet = errors.New("provider runtime is not set")
)

// Runtime identifies the provider runtime an application deploys to and
// runs on. Concrete runtimes live in provider packages; selecting and
// loading one happens in tooling outside this module.
type Runtime interface {
	// Name returns the canonical provider name, such as "aws" or "local".
	Name() string
	// Version returns the provider package version.
	Version() string
}

// SetProvider wires the provider runtime. It may be called once.
func (c *Config) SetProvider(runtime Runtime) error {
	if c == nil {
		return ErrConfigRequired
	}
	if runtime == nil {
		return ErrProviderRequired
	}
	if c.provider != nil {
		return fmt.Errorf("%w: %s", ErrProviderAlreadySet, c.provider.Name())
	}
	c.provider = runtime
	return nil
}

// Provider returns the wired provider runtime.
func (c *Config) Provider() (Runtime, error) {
	if c == nil {
		return nil, ErrConfigRequired
	}
	if c.provider == nil {
		return nil, ErrProviderNotSet
	}
	return c.provider, nil
}
