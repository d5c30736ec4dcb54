// Package schema tracks how the shapes of an application's concepts evolve
// across deployments.
//
// Every entity, command, and event starts its life at BaseVersion. When a
// shape changes, the application declares a migration that upgrades an
// instance of the previous version to the new one. Declarations accumulate
// in a Registry keyed by concept name, and the highest declared target
// version becomes the concept's current version.
//
// Versions must form a gapless chain. If a concept is at version 5, the
// registry must hold a migration for every version from
// FirstMigratableVersion through 5, because stored instances may be at any
// historical version and each one must be upgradable step by step. Validate
// enforces the chain before deployment; Migrator walks it at runtime.
package schema
