package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/apogeehq/apogee/logging"
)

var (
	// ErrVersionBelowBase indicates an instance claiming a version below
	// BaseVersion. No such instance can exist.
	ErrVersionBelowBase = errors.New("instance version is below the base version")
	// ErrVersionAhead indicates an instance claiming a version above the
	// concept's current version, usually a sign the application was rolled
	// back past a deployed migration.
	ErrVersionAhead = errors.New("instance version is ahead of the current version")
)

// Migrator upgrades stored instances to their concept's current version by
// walking the declared migration chain one step at a time.
type Migrator struct {
	registry *Registry
	logger   *logging.Logger
}

// NewMigrator creates a migrator over the given registry. The logger may be
// nil to disable logging.
func NewMigrator(registry *Registry, logger *logging.Logger) (*Migrator, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Migrator{registry: registry, logger: logger}, nil
}

// Migrate upgrades instance from the given version to the concept's current
// version, applying each declared migration in ascending order. It returns
// the upgraded instance and the version it now has. An instance already at
// the current version is returned unchanged.
//
// A missing step surfaces as a ChainGapError, which means the declarations
// were never validated or the registry changed since.
func (m *Migrator) Migrate(ctx context.Context, concept string, instance any, from Version) (any, Version, error) {
	if m == nil || m.registry == nil {
		return nil, BaseVersion, ErrRegistryRequired
	}
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil, BaseVersion, ErrConceptRequired
	}
	if from < BaseVersion {
		return nil, from, fmt.Errorf("%w: %s version %d", ErrVersionBelowBase, concept, from)
	}

	current := m.registry.CurrentVersion(concept)
	if from > current {
		return nil, from, fmt.Errorf("%w: %s version %d, current %d", ErrVersionAhead, concept, from, current)
	}
	if from == current {
		return instance, from, nil
	}

	logger := m.logger.With("concept", concept, "from_version", int(from), "to_version", int(current))
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		logger = logger.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}
	logger.Info("migrating instance")

	for version := from + 1; version <= current; version++ {
		migration, ok := m.registry.Migration(concept, version)
		if !ok {
			return nil, version - 1, &ChainGapError{Concept: concept, Missing: version, Current: current}
		}
		upgraded, err := migration.Handle(ctx, instance)
		if err != nil {
			return nil, version - 1, fmt.Errorf("migrate %q to version %d: %w", concept, version, err)
		}
		instance = upgraded
		logger.Debug("applied migration", "version", int(version))
	}
	return instance, current, nil
}
