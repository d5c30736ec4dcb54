package schema

import "context"

// Version is the schema version of a concept. Versions start at BaseVersion
// and increase by one with each declared migration.
type Version int

const (
	// BaseVersion is the version every concept has before any migration is
	// declared for it.
	BaseVersion Version = 1
	// FirstMigratableVersion is the lowest version a migration may target.
	// There is nothing below BaseVersion to migrate from.
	FirstMigratableVersion Version = 2
)

// Handler upgrades an instance from the version immediately below the
// migration's target to the target version. It receives the old shape and
// returns the new one.
type Handler func(ctx context.Context, instance any) (any, error)

// Migration declares a single version upgrade for one concept.
type Migration struct {
	// Concept names the entity, command, or event the migration applies to.
	Concept string
	// ToVersion is the version the handler upgrades instances to.
	ToVersion Version
	// Handle performs the upgrade.
	Handle Handler
}
