package apogee

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apogeehq/apogee/schema"
)

var (
	// ErrEntityNameRequired indicates an entity without a name.
	ErrEntityNameRequired = errors.New("entity name is required")
	// ErrEntityAlreadyRegistered indicates a second entity with the same name.
	ErrEntityAlreadyRegistered = errors.New("entity already registered")
	// ErrEventNameRequired indicates a reducer or handler without an event name.
	ErrEventNameRequired = errors.New("event name is required")
	// ErrReduceFuncRequired indicates a reducer without a reduce function.
	ErrReduceFuncRequired = errors.New("reduce function is required")
	// ErrEventAlreadyReduced indicates a second reducer for the same event.
	ErrEventAlreadyReduced = errors.New("event already has a reducer")
	// ErrCommandNameRequired indicates a command without a name.
	ErrCommandNameRequired = errors.New("command name is required")
	// ErrCommandAlreadyRegistered indicates a second command with the same name.
	ErrCommandAlreadyRegistered = errors.New("command already registered")
	// ErrHandlerRequired indicates a command or event handler without a
	// handler function.
	ErrHandlerRequired = errors.New("handler function is required")
	// ErrReadModelNameRequired indicates a read model without a name.
	ErrReadModelNameRequired = errors.New("read model name is required")
	// ErrReadModelAlreadyRegistered indicates a second read model with the
	// same name.
	ErrReadModelAlreadyRegistered = errors.New("read model already registered")
	// ErrProjectFuncRequired indicates a projection without a project function.
	ErrProjectFuncRequired = errors.New("project function is required")
	// ErrJoinKeyRequired indicates a projection without a join key.
	ErrJoinKeyRequired = errors.New("projection join key is required")
	// ErrRoleNameRequired indicates a role without a name.
	ErrRoleNameRequired = errors.New("role name is required")
	// ErrRoleAlreadyRegistered indicates a second role with the same name.
	ErrRoleAlreadyRegistered = errors.New("role already registered")
)

// RegisterEntity adds an entity declaration. Entity names are unique.
func (c *Config) RegisterEntity(entity Entity) error {
	if c == nil {
		return ErrConfigRequired
	}
	entity.Name = strings.TrimSpace(entity.Name)
	if entity.Name == "" {
		return ErrEntityNameRequired
	}
	if c.entities == nil {
		c.entities = make(map[string]Entity)
	}
	if _, exists := c.entities[entity.Name]; exists {
		return fmt.Errorf("%w: %s", ErrEntityAlreadyRegistered, entity.Name)
	}
	c.entities[entity.Name] = entity
	return nil
}

// RegisterReducer binds an event to the entity that folds it. Each event
// may have one reducer.
func (c *Config) RegisterReducer(reducer Reducer) error {
	if c == nil {
		return ErrConfigRequired
	}
	reducer.EventName = strings.TrimSpace(reducer.EventName)
	if reducer.EventName == "" {
		return ErrEventNameRequired
	}
	reducer.EntityName = strings.TrimSpace(reducer.EntityName)
	if reducer.EntityName == "" {
		return fmt.Errorf("%w: reducer for event %s", ErrEntityNameRequired, reducer.EventName)
	}
	if reducer.Reduce == nil {
		return fmt.Errorf("%w: event %s", ErrReduceFuncRequired, reducer.EventName)
	}
	if c.reducers == nil {
		c.reducers = make(map[string]Reducer)
	}
	if existing, exists := c.reducers[reducer.EventName]; exists {
		return fmt.Errorf("%w: %s is reduced by %s", ErrEventAlreadyReduced, reducer.EventName, existing.EntityName)
	}
	c.reducers[reducer.EventName] = reducer
	return nil
}

// RegisterCommand adds a command declaration. Command names are unique.
func (c *Config) RegisterCommand(command Command) error {
	if c == nil {
		return ErrConfigRequired
	}
	command.Name = strings.TrimSpace(command.Name)
	if command.Name == "" {
		return ErrCommandNameRequired
	}
	if command.Handle == nil {
		return fmt.Errorf("%w: command %s", ErrHandlerRequired, command.Name)
	}
	if c.commands == nil {
		c.commands = make(map[string]Command)
	}
	if _, exists := c.commands[command.Name]; exists {
		return fmt.Errorf("%w: %s", ErrCommandAlreadyRegistered, command.Name)
	}
	c.commands[command.Name] = command
	return nil
}

// RegisterEventHandler adds a handler for an event. Events accept any
// number of handlers; the runtime invokes them in registration order.
func (c *Config) RegisterEventHandler(eventName string, handle EventHandlerFunc) error {
	if c == nil {
		return ErrConfigRequired
	}
	eventName = strings.TrimSpace(eventName)
	if eventName == "" {
		return ErrEventNameRequired
	}
	if handle == nil {
		return fmt.Errorf("%w: event %s", ErrHandlerRequired, eventName)
	}
	if c.eventHandlers == nil {
		c.eventHandlers = make(map[string][]EventHandlerFunc)
	}
	c.eventHandlers[eventName] = append(c.eventHandlers[eventName], handle)
	return nil
}

// RegisterReadModel adds a read model declaration. Read model names are
// unique.
func (c *Config) RegisterReadModel(readModel ReadModel) error {
	if c == nil {
		return ErrConfigRequired
	}
	readModel.Name = strings.TrimSpace(readModel.Name)
	if readModel.Name == "" {
		return ErrReadModelNameRequired
	}
	if c.readModels == nil {
		c.readModels = make(map[string]ReadModel)
	}
	if _, exists := c.readModels[readModel.Name]; exists {
		return fmt.Errorf("%w: %s", ErrReadModelAlreadyRegistered, readModel.Name)
	}
	c.readModels[readModel.Name] = readModel
	return nil
}

// RegisterProjection binds an entity to a read model it keeps up to date.
// An entity may project onto any number of read models.
func (c *Config) RegisterProjection(projection Projection) error {
	if c == nil {
		return ErrConfigRequired
	}
	projection.EntityName = strings.TrimSpace(projection.EntityName)
	if projection.EntityName == "" {
		return ErrEntityNameRequired
	}
	projection.ReadModelName = strings.TrimSpace(projection.ReadModelName)
	if projection.ReadModelName == "" {
		return fmt.Errorf("%w: projection from %s", ErrReadModelNameRequired, projection.EntityName)
	}
	projection.JoinKey = strings.TrimSpace(projection.JoinKey)
	if projection.JoinKey == "" {
		return fmt.Errorf("%w: %s onto %s", ErrJoinKeyRequired, projection.EntityName, projection.ReadModelName)
	}
	if projection.Project == nil {
		return fmt.Errorf("%w: %s onto %s", ErrProjectFuncRequired, projection.EntityName, projection.ReadModelName)
	}
	if c.projections == nil {
		c.projections = make(map[string][]Projection)
	}
	c.projections[projection.EntityName] = append(c.projections[projection.EntityName], projection)
	return nil
}

// RegisterRole adds a role declaration. Role names are unique.
func (c *Config) RegisterRole(role Role) error {
	if c == nil {
		return ErrConfigRequired
	}
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return ErrRoleNameRequired
	}
	if c.roles == nil {
		c.roles = make(map[string]Role)
	}
	if _, exists := c.roles[role.Name]; exists {
		return fmt.Errorf("%w: %s", ErrRoleAlreadyRegistered, role.Name)
	}
	c.roles[role.Name] = role
	return nil
}

// RegisterMigration declares a schema migration for a concept. The chain of
// declared versions is checked by Validate, not here.
func (c *Config) RegisterMigration(m schema.Migration) error {
	if c == nil {
		return ErrConfigRequired
	}
	if c.migrations == nil {
		c.migrations = schema.NewRegistry()
	}
	return c.migrations.Register(m)
}
