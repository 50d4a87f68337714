package model

import (
	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

// Basket holds the items the customer intends to purchase, in add order.
// Every mutation emits basket:changed, whether or not anything was removed.
type Basket struct {
	items []models.Item
	bus   *events.Bus
}

func NewBasket(bus *events.Bus) *Basket {
	return &Basket{bus: bus}
}

// AddItem appends item to the sequence. Duplicate protection is the caller's
// responsibility, the model accepts whatever it is handed.
func (b *Basket) AddItem(item models.Item) {
	b.items = append(b.items, item)
	b.bus.Emit(events.BasketChanged)
}

// DeleteItem removes every item matching id. Deleting an absent id leaves the
// sequence untouched but still announces the change.
func (b *Basket) DeleteItem(id string) {
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.bus.Emit(events.BasketChanged)
}

// TotalAmount returns the number of items in the basket.
func (b *Basket) TotalAmount() int {
	return len(b.items)
}

// TotalCost sums item prices. A priceless item contributes nothing, so a
// single nil price cannot poison the total.
func (b *Basket) TotalCost() int {
	total := 0
	for _, item := range b.items {
		if item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

// Items returns a copy of the basket contents in add order.
func (b *Basket) Items() []models.Item {
	return append([]models.Item(nil), b.items...)
}

// ItemIDs returns the ids of the basket contents in add order.
func (b *Basket) ItemIDs() []string {
	ids := make([]string, len(b.items))
	for i, item := range b.items {
		ids[i] = item.ID
	}
	return ids
}

// IsInBasket reports whether some item with the given id is present.
func (b *Basket) IsInBasket(id string) bool {
	for _, item := range b.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the basket and announces the change.
func (b *Basket) Clear() {
	b.items = nil
	b.bus.Emit(events.BasketChanged)
}
