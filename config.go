package apogee

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apogeehq/apogee/logging"
	"github.com/apogeehq/apogee/schema"
	"github.com/apogeehq/apogee/token"
)

// DefaultAppName is the placeholder application name a new Config starts
// with. Applications are expected to replace it.
const DefaultAppName = "new-apogee-app"

// ErrConfigRequired indicates a nil config.
var ErrConfigRequired = errors.New("config is required")

// Config accumulates an application's declarative metadata and derives the
// values deployment and runtime tooling need.
//
// Populate it during definition, call Validate before deploying or
// starting, and treat it as read-only afterwards. A Config is not safe for
// concurrent mutation.
type Config struct {
	// EnvironmentName is the environment this config was built for. Set by
	// New and never changed.
	EnvironmentName string
	// AppName is the application name every deployment resource name
	// derives from.
	AppName string
	// ProviderPackage is the import path of the provider runtime package.
	// Loader tooling consumes it; the config only records it.
	ProviderPackage string
	// RootPath is the root of the user's project.
	RootPath string
	// Assets lists extra file paths packaging tooling ships with the
	// application.
	Assets []string
	// LogLevel is the minimum severity framework components log at.
	LogLevel logging.Level
	// Env carries custom environment values packaging tooling forwards to
	// the deployed application.
	Env map[string]string
	// TokenVerifier holds the token verification settings snapshotted from
	// the environment by New, or nil when token verification is not
	// configured.
	TokenVerifier *token.VerifierConfig

	entities      map[string]Entity
	reducers      map[string]Reducer
	commands      map[string]Command
	eventHandlers map[string][]EventHandlerFunc
	readModels    map[string]ReadModel
	projections   map[string][]Projection
	roles         map[string]Role
	migrations    *schema.Registry

	provider Runtime
}

// New creates a Config for the named environment. Token verification
// settings are snapshotted from the environment variables named in the
// token package; everything else starts at its default.
func New(environmentName string) (*Config, error) {
	verifier, err := token.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("load token verifier settings: %w", err)
	}

	return &Config{
		EnvironmentName: strings.TrimSpace(environmentName),
		AppName:         DefaultAppName,
		RootPath:        ".",
		LogLevel:        logging.LevelDebug,
		Env:             make(map[string]string),
		TokenVerifier:   verifier,
		entities:        make(map[string]Entity),
		reducers:        make(map[string]Reducer),
		commands:        make(map[string]Command),
		eventHandlers:   make(map[string][]EventHandlerFunc),
		readModels:      make(map[string]ReadModel),
		projections:     make(map[string][]Projection),
		roles:           make(map[string]Role),
		migrations:      schema.NewRegistry(),
	}, nil
}

// Validate checks the declaration set before any deploy or start action
// proceeds. A failure is terminal for the attempt: abort, fix the
// declarations, deploy again. Validate never mutates the config.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}
	return c.migrations.Validate()
}

// Migrations exposes the schema migration registry, for registering
// declarations and for runtimes that migrate stored instances.
func (c *Config) Migrations() *schema.Registry {
	if c == nil {
		return nil
	}
	return c.migrations
}

// CurrentVersionFor returns the current schema version of a concept: the
// highest version a migration is declared for, or schema.BaseVersion when
// the concept has none.
func (c *Config) CurrentVersionFor(concept string) schema.Version {
	if c == nil {
		return schema.BaseVersion
	}
	return c.migrations.CurrentVersion(concept)
}

// Logger builds a logger at the config's log level.
func (c *Config) Logger() (*logging.Logger, error) {
	if c == nil {
		return nil, ErrConfigRequired
	}
	return logging.New(c.LogLevel)
}
