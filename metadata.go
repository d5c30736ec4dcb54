package apogee

import "context"

// CommandHandler executes a submitted command. Handlers are registered as
// metadata and invoked by the provider runtime, never by this package.
type CommandHandler func(ctx context.Context, command any) error

// EventHandlerFunc reacts to an event after it is persisted.
type EventHandlerFunc func(ctx context.Context, event any) error

// ReduceFunc folds an event into an entity snapshot and returns the updated
// snapshot.
type ReduceFunc func(event any, snapshot any) (any, error)

// ProjectFunc projects an entity snapshot onto a read model and returns the
// updated read model.
type ProjectFunc func(entity any, readModel any) (any, error)

// Entity describes a domain object whose state is reduced from its event
// stream.
type Entity struct {
	// Name identifies the entity. Required.
	Name string
	// New creates an empty instance for the runtime to fold events into.
	New func() any
}

// Reducer binds an event to the entity whose state it folds into. Each
// event has at most one reducer.
type Reducer struct {
	// EventName names the event being reduced. Required.
	EventName string
	// EntityName names the entity the event folds into. Required.
	EntityName string
	// Reduce performs the fold. Required.
	Reduce ReduceFunc
}

// Command describes a command type, who may submit it, and how it runs.
type Command struct {
	// Name identifies the command. Required.
	Name string
	// AuthorizedRoles lists the role names allowed to submit the command.
	// Empty means the command is public.
	AuthorizedRoles []string
	// Handle executes the command. Required.
	Handle CommandHandler
}

// ReadModel describes a query-side model projected from entity state.
type ReadModel struct {
	// Name identifies the read model. Required.
	Name string
	// AuthorizedRoles lists the role names allowed to query the read model.
	// Empty means the read model is public.
	AuthorizedRoles []string
	// SequenceKey optionally names the field used to order sequenced reads.
	SequenceKey string
	// New creates an empty instance for the runtime to project onto.
	New func() any
}

// Projection binds an entity to a read model it keeps up to date.
type Projection struct {
	// EntityName names the source entity. Required.
	EntityName string
	// ReadModelName names the read model being projected. Required.
	ReadModelName string
	// JoinKey names the entity field identifying the read model instance to
	// update. Required.
	JoinKey string
	// Project performs the projection. Required.
	Project ProjectFunc
}

// Role describes an authorization role callers may hold.
type Role struct {
	// Name identifies the role. Required.
	Name string
	// AllowSelfSignUp permits end users to sign themselves up for the role.
	AllowSelfSignUp bool
}
