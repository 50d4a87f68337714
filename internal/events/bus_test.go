package events

import (
	"testing"

	"github.com/jogardn/larek-storefront/pkg/models"
)

func TestEmitRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var calls []string
	bus.On(KindBasketChanged, func(Event) { calls = append(calls, "first") })
	bus.OnAll(func(Event) { calls = append(calls, "all") })
	bus.On(KindBasketChanged, func(Event) { calls = append(calls, "second") })

	bus.Emit(BasketChanged)

	// Kind subscribers fire in registration order, all-subscribers after.
	expected := []string{"first", "second", "all"}
	if len(calls) != len(expected) {
		t.Fatalf("Expected %d calls, got %d: %v", len(expected), len(calls), calls)
	}
	for i, want := range expected {
		if calls[i] != want {
			t.Errorf("Call %d: expected %q, got %q", i, want, calls[i])
		}
	}
}

func TestEmitOnlyMatchingKind(t *testing.T) {
	bus := NewBus()

	catalogCalls := 0
	basketCalls := 0
	bus.On(KindCatalogChanged, func(Event) { catalogCalls++ })
	bus.On(KindBasketChanged, func(Event) { basketCalls++ })

	bus.Emit(CatalogChanged)

	if catalogCalls != 1 {
		t.Errorf("Expected 1 catalog call, got %d", catalogCalls)
	}
	if basketCalls != 0 {
		t.Errorf("Expected 0 basket calls, got %d", basketCalls)
	}
}

func TestOnKindsGroup(t *testing.T) {
	bus := NewBus()

	var fields []models.Field
	bus.OnKinds(ContactsFieldKinds, func(e Event) {
		fields = append(fields, e.(ContactsFieldChanged).Field)
	})

	bus.Emit(ContactsFieldChanged{Field: models.FieldEmail, Value: "a@b.c"})
	bus.Emit(ContactsFieldChanged{Field: models.FieldPhone, Value: "123"})
	bus.Emit(OrderFieldChanged{Field: models.FieldAddress, Value: "x"})

	if len(fields) != 2 {
		t.Fatalf("Expected 2 group calls, got %d", len(fields))
	}
	if fields[0] != models.FieldEmail || fields[1] != models.FieldPhone {
		t.Errorf("Unexpected fields: %v", fields)
	}
}

func TestEventPayloads(t *testing.T) {
	bus := NewBus()

	var got models.Item
	bus.On(KindCardSelect, func(e Event) {
		got = e.(CardSelected).Item
	})

	item := models.Item{ID: "a", Title: "товар", Price: models.Price(10)}
	bus.Emit(CardSelected{Item: item})

	if got.ID != "a" || got.Title != "товар" {
		t.Errorf("Payload not delivered: %+v", got)
	}
}

func TestOff(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.On(KindBasketChanged, func(Event) { calls++ })

	bus.Emit(BasketChanged)
	bus.Off(id)
	bus.Emit(BasketChanged)

	if calls != 1 {
		t.Errorf("Expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestOffAllSubscriber(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.OnAll(func(Event) { calls++ })

	bus.Emit(BasketChanged)
	bus.Off(id)
	bus.Emit(BasketChanged)

	if calls != 1 {
		t.Errorf("Expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestNestedEmit(t *testing.T) {
	bus := NewBus()

	var calls []string
	bus.On(KindCardBuy, func(Event) {
		calls = append(calls, "buy")
		bus.Emit(BasketChanged)
		calls = append(calls, "buy-done")
	})
	bus.On(KindBasketChanged, func(Event) { calls = append(calls, "changed") })

	bus.Emit(CardBuy)

	// An emit does not return until nested emits have completed.
	expected := []string{"buy", "changed", "buy-done"}
	for i, want := range expected {
		if i >= len(calls) || calls[i] != want {
			t.Fatalf("Expected call order %v, got %v", expected, calls)
		}
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()

	lateCalls := 0
	bus.On(KindBasketChanged, func(Event) {
		bus.On(KindBasketChanged, func(Event) { lateCalls++ })
	})

	bus.Emit(BasketChanged)
	if lateCalls != 0 {
		t.Errorf("Handler registered during dispatch should not see the current event")
	}

	bus.Emit(BasketChanged)
	if lateCalls != 1 {
		t.Errorf("Expected 1 late call, got %d", lateCalls)
	}
}
