package model

import (
	"testing"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

func TestCatalogSetEmitsChange(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)
	changes := countEvents(bus, events.KindCatalogChanged)

	catalog.SetCatalog([]models.Item{{ID: "a"}, {ID: "b"}})

	if *changes != 1 {
		t.Errorf("Expected 1 change event, got %d", *changes)
	}

	items := catalog.Items()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("Server order not preserved: %v", items)
	}
}

func TestCatalogReplacedWholesale(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)

	catalog.SetCatalog([]models.Item{{ID: "a"}})
	catalog.SetCatalog([]models.Item{{ID: "b"}})

	items := catalog.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Errorf("Expected replaced catalog, got %v", items)
	}
}

func TestCatalogSnapshotIsCopy(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)

	catalog.SetCatalog([]models.Item{{ID: "a", Title: "original"}})

	snapshot := catalog.Items()
	snapshot[0].Title = "mutated"

	if catalog.Items()[0].Title != "original" {
		t.Error("Mutating the snapshot must not affect the catalog")
	}
}

func TestCatalogSelectionIsSilent(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)

	if _, ok := catalog.Item(); ok {
		t.Error("Expected no selection initially")
	}

	emitted := 0
	bus.OnAll(func(events.Event) { emitted++ })

	catalog.SetItem(models.Item{ID: "a"})

	if emitted != 0 {
		t.Errorf("SetItem must not emit, got %d events", emitted)
	}

	item, ok := catalog.Item()
	if !ok || item.ID != "a" {
		t.Errorf("Expected selected item a, got %v (%v)", item, ok)
	}
}
