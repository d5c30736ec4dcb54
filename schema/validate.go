package schema

import "fmt"

// ChainGapError reports a concept whose declared migrations do not form a
// gapless chain. It names the smallest missing target version and the range
// the chain must cover.
type ChainGapError struct {
	// Concept is the concept with the broken chain.
	Concept string
	// Missing is the smallest target version with no declared migration.
	Missing Version
	// Current is the concept's current version, the upper bound of the
	// required range.
	Current Version
}

func (e *ChainGapError) Error() string {
	return fmt.Sprintf(
		"migrations for %q are invalid: missing migration with target version %d; a migration must exist for every version in the range [%d..%d]",
		e.Concept, e.Missing, FirstMigratableVersion, e.Current,
	)
}

// Validate checks that every concept's migrations form a gapless chain from
// FirstMigratableVersion through the concept's current version. A concept
// with no migrations is valid. Validation stops at the first broken chain
// and returns a ChainGapError for it; a failure means the declarations are
// wrong and deployment must not proceed.
//
// Concepts are checked in sorted order, so repeated runs over the same
// declarations report the same gap.
func (r *Registry) Validate() error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, concept := range r.conceptsLocked() {
		if err := r.validateChainLocked(concept); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) validateChainLocked(concept string) error {
	current := r.currentVersionLocked(concept)
	for version := FirstMigratableVersion; version <= current; version++ {
		if _, ok := r.migrations[concept][version]; !ok {
			return &ChainGapError{Concept: concept, Missing: version, Current: current}
		}
	}
	return nil
}
