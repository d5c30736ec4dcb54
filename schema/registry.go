package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrRegistryRequired indicates a nil registry.
	ErrRegistryRequired = errors.New("schema registry is required")
	// ErrConceptRequired indicates a migration without a concept name.
	ErrConceptRequired = errors.New("migration concept is required")
	// ErrHandlerRequired indicates a migration without a handler.
	ErrHandlerRequired = errors.New("migration handler is required")
	// ErrVersionTooLow indicates a migration targeting a version below
	// FirstMigratableVersion.
	ErrVersionTooLow = errors.New("migration version is too low")
	// ErrVersionAlreadyRegistered indicates a second migration for the same
	// concept and target version.
	ErrVersionAlreadyRegistered = errors.New("migration version already registered")
)

// Registry holds the declared migrations of every concept, keyed by concept
// name and target version.
type Registry struct {
	mu         sync.RWMutex
	migrations map[string]map[Version]Migration
}

// NewRegistry creates an empty migration registry.
func NewRegistry() *Registry {
	return &Registry{migrations: make(map[string]map[Version]Migration)}
}

// Register adds a migration declaration. The concept name is trimmed, the
// target version must be at least FirstMigratableVersion, and each concept
// may declare one migration per target version.
func (r *Registry) Register(m Migration) error {
	if r == nil {
		return ErrRegistryRequired
	}
	m.Concept = strings.TrimSpace(m.Concept)
	if m.Concept == "" {
		return ErrConceptRequired
	}
	if m.ToVersion < FirstMigratableVersion {
		return fmt.Errorf("%w: %s version %d", ErrVersionTooLow, m.Concept, m.ToVersion)
	}
	if m.Handle == nil {
		return fmt.Errorf("%w: %s version %d", ErrHandlerRequired, m.Concept, m.ToVersion)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.migrations == nil {
		r.migrations = make(map[string]map[Version]Migration)
	}
	versions, ok := r.migrations[m.Concept]
	if !ok {
		versions = make(map[Version]Migration)
		r.migrations[m.Concept] = versions
	}
	if _, exists := versions[m.ToVersion]; exists {
		return fmt.Errorf("%w: %s version %d", ErrVersionAlreadyRegistered, m.Concept, m.ToVersion)
	}
	versions[m.ToVersion] = m
	return nil
}

// CurrentVersion returns the current schema version of a concept: the
// highest declared target version, or BaseVersion when the concept has no
// migrations.
func (r *Registry) CurrentVersion(concept string) Version {
	if r == nil {
		return BaseVersion
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentVersionLocked(strings.TrimSpace(concept))
}

func (r *Registry) currentVersionLocked(concept string) Version {
	current := BaseVersion
	for version := range r.migrations[concept] {
		if version > current {
			current = version
		}
	}
	return current
}

// Migration returns the declared migration that upgrades a concept to the
// given target version.
func (r *Registry) Migration(concept string, to Version) (Migration, bool) {
	if r == nil {
		return Migration{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.migrations[strings.TrimSpace(concept)][to]
	return m, ok
}

// Concepts returns the names of every concept with at least one declared
// migration, sorted for stable iteration.
func (r *Registry) Concepts() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conceptsLocked()
}

func (r *Registry) conceptsLocked() []string {
	concepts := make([]string, 0, len(r.migrations))
	for concept := range r.migrations {
		concepts = append(concepts, concept)
	}
	sort.Strings(concepts)
	return concepts
}

// Versions returns the declared target versions of a concept in ascending
// order.
func (r *Registry) Versions(concept string) []Version {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	declared := r.migrations[strings.TrimSpace(concept)]
	if len(declared) == 0 {
		return nil
	}
	versions := make([]Version, 0, len(declared))
	for version := range declared {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions
}
