package model

import (
	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

// Validation messages, keyed by the failing field.
const (
	ErrPaymentRequired = "Необходимо выбрать способ оплаты"
	ErrAddressRequired = "Необходимо указать адрес"
	ErrEmailRequired   = "Необходимо указать email"
	ErrPhoneRequired   = "Необходимо указать телефон"
)

// Customer accumulates the checkout form data field by field. Whole-form
// validity is recomputed from scratch on every field update; each validation
// pass emits the full (possibly empty) error map for its form.
type Customer struct {
	customer models.Customer
	errors   models.FormErrors
	bus      *events.Bus
}

func NewCustomer(bus *events.Bus) *Customer {
	return &Customer{errors: models.FormErrors{}, bus: bus}
}

// SetOrderData sets one field of the payment/address step and revalidates it.
// A passing validation additionally emits order:confirmed.
func (c *Customer) SetOrderData(field models.Field, value string) {
	c.setField(field, value)
	if c.ValidateOrderData() {
		c.bus.Emit(events.OrderConfirmed)
	}
}

// SetContactsData sets one field of the contacts step and revalidates it.
// A passing validation additionally emits contacts:confirmed.
func (c *Customer) SetContactsData(field models.Field, value string) {
	c.setField(field, value)
	if c.ValidateContactsData() {
		c.bus.Emit(events.ContactsConfirm)
	}
}

func (c *Customer) setField(field models.Field, value string) {
	switch field {
	case models.FieldPayment:
		c.customer.Payment = value
	case models.FieldAddress:
		c.customer.Address = value
	case models.FieldEmail:
		c.customer.Email = value
	case models.FieldPhone:
		c.customer.Phone = value
	}
}

// ValidateOrderData requires non-empty payment and address. It always emits
// formErrors.order:change with the recomputed map and reports validity.
func (c *Customer) ValidateOrderData() bool {
	errors := models.FormErrors{}

	if c.customer.Payment == "" {
		errors[models.FieldPayment] = ErrPaymentRequired
	}
	if c.customer.Address == "" {
		errors[models.FieldAddress] = ErrAddressRequired
	}

	c.errors = errors
	c.bus.Emit(events.OrderErrorsChanged{Errors: c.errorsSnapshot()})
	return len(errors) == 0
}

// ValidateContactsData requires non-empty email and phone. It always emits
// formErrors.contacts:change with the recomputed map and reports validity.
func (c *Customer) ValidateContactsData() bool {
	errors := models.FormErrors{}

	if c.customer.Email == "" {
		errors[models.FieldEmail] = ErrEmailRequired
	}
	if c.customer.Phone == "" {
		errors[models.FieldPhone] = ErrPhoneRequired
	}

	c.errors = errors
	c.bus.Emit(events.ContactsErrorsChanged{Errors: c.errorsSnapshot()})
	return len(errors) == 0
}

// Data returns a copy of the accumulated customer fields.
func (c *Customer) Data() models.Customer {
	return c.customer
}

// Clear resets every field and the stored errors. No event is emitted.
func (c *Customer) Clear() {
	c.customer = models.Customer{}
	c.errors = models.FormErrors{}
}

func (c *Customer) errorsSnapshot() models.FormErrors {
	snapshot := make(models.FormErrors, len(c.errors))
	for field, msg := range c.errors {
		snapshot[field] = msg
	}
	return snapshot
}
