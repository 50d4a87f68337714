package model

import (
	"testing"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

func TestValidateOrderDataEmpty(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	var emitted []models.FormErrors
	bus.On(events.KindOrderErrors, func(e events.Event) {
		emitted = append(emitted, e.(events.OrderErrorsChanged).Errors)
	})

	if customer.ValidateOrderData() {
		t.Error("Expected invalid order data")
	}
	if len(emitted) != 1 {
		t.Fatalf("Expected 1 error event, got %d", len(emitted))
	}

	errs := emitted[0]
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[models.FieldPayment] != ErrPaymentRequired {
		t.Errorf("Unexpected payment error: %q", errs[models.FieldPayment])
	}
	if errs[models.FieldAddress] != ErrAddressRequired {
		t.Errorf("Unexpected address error: %q", errs[models.FieldAddress])
	}
}

func TestValidateOrderDataPartial(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	customer.SetOrderData(models.FieldPayment, "card")

	var last models.FormErrors
	bus.On(events.KindOrderErrors, func(e events.Event) {
		last = e.(events.OrderErrorsChanged).Errors
	})

	if customer.ValidateOrderData() {
		t.Error("Expected invalid order data with empty address")
	}
	if len(last) != 1 {
		t.Fatalf("Expected exactly the address error, got %v", last)
	}
	if _, ok := last[models.FieldAddress]; !ok {
		t.Errorf("Expected address key, got %v", last)
	}
}

func TestSetOrderDataConfirms(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	confirmed := 0
	bus.On(events.KindOrderConfirmed, func(events.Event) { confirmed++ })

	customer.SetOrderData(models.FieldPayment, "card")
	if confirmed != 0 {
		t.Error("Half-filled form must not confirm")
	}

	customer.SetOrderData(models.FieldAddress, "Спб, Воронежская 6")
	if confirmed != 1 {
		t.Errorf("Expected 1 confirmation, got %d", confirmed)
	}
}

func TestValidateContactsData(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	var last models.FormErrors
	bus.On(events.KindContactsErrors, func(e events.Event) {
		last = e.(events.ContactsErrorsChanged).Errors
	})

	if customer.ValidateContactsData() {
		t.Error("Expected invalid contacts data")
	}
	if last[models.FieldEmail] != ErrEmailRequired || last[models.FieldPhone] != ErrPhoneRequired {
		t.Errorf("Unexpected errors: %v", last)
	}

	customer.SetContactsData(models.FieldEmail, "a@b.c")
	customer.SetContactsData(models.FieldPhone, "+79990000000")

	if !customer.ValidateContactsData() {
		t.Error("Expected valid contacts data")
	}
	if len(last) != 0 {
		t.Errorf("Expected empty error map, got %v", last)
	}
}

func TestSetContactsDataConfirms(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	confirmed := 0
	bus.On(events.KindContactsConfirm, func(events.Event) { confirmed++ })

	customer.SetContactsData(models.FieldEmail, "a@b.c")
	customer.SetContactsData(models.FieldPhone, "+79990000000")

	if confirmed != 1 {
		t.Errorf("Expected 1 confirmation, got %d", confirmed)
	}
}

func TestClearCustomerData(t *testing.T) {
	bus := events.NewBus()
	customer := NewCustomer(bus)

	customer.SetOrderData(models.FieldPayment, "card")
	customer.SetOrderData(models.FieldAddress, "адрес")
	customer.SetContactsData(models.FieldEmail, "a@b.c")
	customer.SetContactsData(models.FieldPhone, "123")

	emitted := 0
	bus.OnAll(func(events.Event) { emitted++ })

	customer.Clear()

	if customer.Data() != (models.Customer{}) {
		t.Errorf("Expected empty customer, got %+v", customer.Data())
	}
	if emitted != 0 {
		t.Errorf("Clear must not emit, got %d events", emitted)
	}
}
