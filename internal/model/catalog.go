package model

import (
	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

// Catalog holds the fetched item list in server order plus the item currently
// open in the preview. Callers only ever see copies of the stored items.
type Catalog struct {
	catalog  []models.Item
	selected models.Item
	hasItem  bool
	bus      *events.Bus
}

func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{bus: bus}
}

// SetCatalog replaces the stored sequence wholesale and announces the change.
func (c *Catalog) SetCatalog(items []models.Item) {
	c.catalog = append([]models.Item(nil), items...)
	c.bus.Emit(events.CatalogChanged)
}

// Items returns a copy of the current sequence.
func (c *Catalog) Items() []models.Item {
	return append([]models.Item(nil), c.catalog...)
}

// SetItem tracks the currently open item. Intentionally silent: selection is
// observed through the card:select event, which carries the item itself.
func (c *Catalog) SetItem(item models.Item) {
	c.selected = item
	c.hasItem = true
}

// Item returns the currently open item, if any.
func (c *Catalog) Item() (models.Item, bool) {
	return c.selected, c.hasItem
}
