package events

import "github.com/jogardn/larek-storefront/pkg/models"

// Event is one occurrence in the storefront vocabulary. Every concrete event
// type carries its payload in typed fields; the bus dispatches on EventKind.
type Event interface {
	EventKind() Kind
}

// Signal is an event without a payload.
type Signal Kind

func (s Signal) EventKind() Kind { return Kind(s) }

// Payload-less events, one per kind.
var (
	CatalogChanged  = Signal(KindCatalogChanged)
	BasketChanged   = Signal(KindBasketChanged)
	BasketOpen      = Signal(KindBasketOpen)
	CardBuy         = Signal(KindCardBuy)
	OrderOpen       = Signal(KindOrderOpen)
	OrderCardPay    = Signal(KindOrderCardPay)
	OrderCashPay    = Signal(KindOrderCashPay)
	OrderSubmit     = Signal(KindOrderSubmit)
	ContactsSubmit  = Signal(KindContactsSubmit)
	ModalOpen       = Signal(KindModalOpen)
	ModalClose      = Signal(KindModalClose)
	OrderConfirmed  = Signal(KindOrderConfirmed)
	ContactsConfirm = Signal(KindContactsConfirm)
	OrderSuccess    = Signal(KindOrderSuccess)
)

// CardSelected reports a catalog card click, carrying the clicked item.
type CardSelected struct {
	Item models.Item
}

func (CardSelected) EventKind() Kind { return KindCardSelect }

// BasketDelete reports a delete click on a basket row.
type BasketDelete struct {
	Item models.Item
}

func (BasketDelete) EventKind() Kind { return KindBasketDelete }

// OrderFieldChanged reports an input change on the order form.
type OrderFieldChanged struct {
	Field models.Field
	Value string
}

func (e OrderFieldChanged) EventKind() Kind { return orderFieldKinds[e.Field] }

// ContactsFieldChanged reports an input change on the contacts form.
type ContactsFieldChanged struct {
	Field models.Field
	Value string
}

func (e ContactsFieldChanged) EventKind() Kind { return contactsFieldKinds[e.Field] }

// OrderErrorsChanged carries the recomputed order form error map.
type OrderErrorsChanged struct {
	Errors models.FormErrors
}

func (OrderErrorsChanged) EventKind() Kind { return KindOrderErrors }

// ContactsErrorsChanged carries the recomputed contacts form error map.
type ContactsErrorsChanged struct {
	Errors models.FormErrors
}

func (ContactsErrorsChanged) EventKind() Kind { return KindContactsErrors }
