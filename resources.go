package apogee

import (
	"errors"
	"strings"
)

// Suffixes appended to the application name when deriving resource names.
// Changing any of these orphans the resources of every deployed
// application.
const (
	applicationStackSuffix   = "-app"
	eventsStoreSuffix        = "-events-store"
	subscriptionsStoreSuffix = "-subscriptions-store"
	connectionsStoreSuffix   = "-connections-store"
)

// ErrAppNameRequired indicates resource names were requested from a config
// with no application name.
var ErrAppNameRequired = errors.New("application name is required")

// ResourceNames carries the deployment resource names derived from an
// application name. The same name always derives the same resources, which
// is what lets successive deployments find what they provisioned before.
type ResourceNames struct {
	// ApplicationStack names the deployment stack. Every other resource
	// name is prefixed with it.
	ApplicationStack string
	// EventsStore names the event journal.
	EventsStore string
	// SubscriptionsStore names the subscription bookkeeping store.
	SubscriptionsStore string
	// ConnectionsStore names the connection bookkeeping store.
	ConnectionsStore string
}

// ForReadModel returns the name of the store backing a read model.
func (r ResourceNames) ForReadModel(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrReadModelNameRequired
	}
	return r.ApplicationStack + "-" + name, nil
}

// ResourceNames derives the deployment resource names from the config's
// application name.
func (c *Config) ResourceNames() (ResourceNames, error) {
	if c == nil {
		return ResourceNames{}, ErrConfigRequired
	}
	appName := strings.TrimSpace(c.AppName)
	if appName == "" {
		return ResourceNames{}, ErrAppNameRequired
	}

	stack := appName + applicationStackSuffix
	return ResourceNames{
		ApplicationStack:   stack,
		EventsStore:        stack + eventsStoreSuffix,
		SubscriptionsStore: stack + subscriptionsStoreSuffix,
		ConnectionsStore:   stack + connectionsStoreSuffix,
	}, nil
}
