package apogee

import "sort"

// Entity returns the declared entity with the given name.
func (c *Config) Entity(name string) (Entity, bool) {
	if c == nil {
		return Entity{}, false
	}
	entity, ok := c.entities[name]
	return entity, ok
}

// Entities returns every declared entity sorted by name.
func (c *Config) Entities() []Entity {
	if c == nil {
		return nil
	}
	entities := make([]Entity, 0, len(c.entities))
	for _, entity := range c.entities {
		entities = append(entities, entity)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].Name < entities[j].Name })
	return entities
}

// ReducerFor returns the reducer bound to an event.
func (c *Config) ReducerFor(eventName string) (Reducer, bool) {
	if c == nil {
		return Reducer{}, false
	}
	reducer, ok := c.reducers[eventName]
	return reducer, ok
}

// Reducers returns every declared reducer sorted by event name.
func (c *Config) Reducers() []Reducer {
	if c == nil {
		return nil
	}
	reducers := make([]Reducer, 0, len(c.reducers))
	for _, reducer := range c.reducers {
		reducers = append(reducers, reducer)
	}
	sort.Slice(reducers, func(i, j int) bool { return reducers[i].EventName < reducers[j].EventName })
	return reducers
}

// Command returns the declared command with the given name.
func (c *Config) Command(name string) (Command, bool) {
	if c == nil {
		return Command{}, false
	}
	command, ok := c.commands[name]
	return command, ok
}

// Commands returns every declared command sorted by name.
func (c *Config) Commands() []Command {
	if c == nil {
		return nil
	}
	commands := make([]Command, 0, len(c.commands))
	for _, command := range c.commands {
		commands = append(commands, command)
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	return commands
}

// HandlersFor returns the handlers registered for an event, in registration
// order. The returned slice is a copy.
func (c *Config) HandlersFor(eventName string) []EventHandlerFunc {
	if c == nil {
		return nil
	}
	handlers := c.eventHandlers[eventName]
	if len(handlers) == 0 {
		return nil
	}
	out := make([]EventHandlerFunc, len(handlers))
	copy(out, handlers)
	return out
}

// ReadModel returns the declared read model with the given name.
func (c *Config) ReadModel(name string) (ReadModel, bool) {
	if c == nil {
		return ReadModel{}, false
	}
	readModel, ok := c.readModels[name]
	return readModel, ok
}

// ReadModels returns every declared read model sorted by name.
func (c *Config) ReadModels() []ReadModel {
	if c == nil {
		return nil
	}
	readModels := make([]ReadModel, 0, len(c.readModels))
	for _, readModel := range c.readModels {
		readModels = append(readModels, readModel)
	}
	sort.Slice(readModels, func(i, j int) bool { return readModels[i].Name < readModels[j].Name })
	return readModels
}

// ProjectionsFor returns the projections sourced from an entity, in
// registration order. The returned slice is a copy.
func (c *Config) ProjectionsFor(entityName string) []Projection {
	if c == nil {
		return nil
	}
	projections := c.projections[entityName]
	if len(projections) == 0 {
		return nil
	}
	out := make([]Projection, len(projections))
	copy(out, projections)
	return out
}

// Role returns the declared role with the given name.
func (c *Config) Role(name string) (Role, bool) {
	if c == nil {
		return Role{}, false
	}
	role, ok := c.roles[name]
	return role, ok
}

// Roles returns every declared role sorted by name.
func (c *Config) Roles() []Role {
	if c == nil {
		return nil
	}
	roles := make([]Role, 0, len(c.roles))
	for _, role := range c.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles
}

// HasRoles reports whether the application declares any roles, which is
// what decides whether authorization infrastructure gets provisioned.
func (c *Config) HasRoles() bool {
	return c != nil && len(c.roles) > 0
}
