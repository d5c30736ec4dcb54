package apogee

import (
	"errors"
	"testing"
)

func TestResourceNames(t *testing.T) {
	cfg := newConfig(t)
	cfg.AppName = "shop"

	names, err := cfg.ResourceNames()
	if err != nil {
		t.Fatalf("ResourceNames: %v", err)
	}

	if names.ApplicationStack != "shop-app" {
		t.Fatalf("ApplicationStack = %q, want %q", names.ApplicationStack, "shop-app")
	}
	if names.EventsStore != "shop-app-events-store" {
		t.Fatalf("EventsStore = %q, want %q", names.EventsStore, "shop-app-events-store")
	}
	if names.SubscriptionsStore != "shop-app-subscriptions-store" {
		t.Fatalf("SubscriptionsStore = %q, want %q", names.SubscriptionsStore, "shop-app-subscriptions-store")
	}
	if names.ConnectionsStore != "shop-app-connections-store" {
		t.Fatalf("ConnectionsStore = %q, want %q", names.ConnectionsStore, "shop-app-connections-store")
	}
}

func TestResourceNamesAreDeterministic(t *testing.T) {
	cfg := newConfig(t)
	cfg.AppName = "shop"

	first, err := cfg.ResourceNames()
	if err != nil {
		t.Fatalf("ResourceNames: %v", err)
	}
	second, err := cfg.ResourceNames()
	if err != nil {
		t.Fatalf("ResourceNames: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical names, got %+v and %+v", first, second)
	}
}

func TestResourceNamesRequireAppName(t *testing.T) {
	cfg := newConfig(t)
	cfg.AppName = "   "

	if _, err := cfg.ResourceNames(); !errors.Is(err, ErrAppNameRequired) {
		t.Fatalf("expected ErrAppNameRequired, got %v", err)
	}
}

func TestResourceNamesForReadModel(t *testing.T) {
	cfg := newConfig(t)
	cfg.AppName = "shop"

	names, err := cfg.ResourceNames()
	if err != nil {
		t.Fatalf("ResourceNames: %v", err)
	}

	got, err := names.ForReadModel("CartSummary")
	if err != nil {
		t.Fatalf("ForReadModel: %v", err)
	}
	if got != "shop-app-CartSummary" {
		t.Fatalf("ForReadModel = %q, want %q", got, "shop-app-CartSummary")
	}

	if _, err := names.ForReadModel("  "); !errors.Is(err, ErrReadModelNameRequired) {
		t.Fatalf("expected ErrReadModelNameRequired, got %v", err)
	}
}
