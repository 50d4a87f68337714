package events

import "github.com/jogardn/larek-storefront/pkg/models"

// Kind identifies one event in the closed storefront vocabulary. The string
// values double as the names used in logs and pushed messages.
type Kind string

const (
	KindCatalogChanged  Kind = "catalog:changed"
	KindBasketChanged   Kind = "basket:changed"
	KindBasketOpen      Kind = "basket:open"
	KindBasketDelete    Kind = "basket:delete"
	KindCardSelect      Kind = "card:select"
	KindCardBuy         Kind = "card:buy"
	KindOrderOpen       Kind = "order:open"
	KindOrderCardPay    Kind = "order.card:selected"
	KindOrderCashPay    Kind = "order.cash:selected"
	KindOrderAddress    Kind = "order.address:change"
	KindOrderErrors     Kind = "formErrors.order:change"
	KindOrderSubmit     Kind = "order:submit"
	KindContactsEmail   Kind = "contacts.email:change"
	KindContactsPhone   Kind = "contacts.phone:change"
	KindContactsErrors  Kind = "formErrors.contacts:change"
	KindContactsSubmit  Kind = "contacts:submit"
	KindModalOpen       Kind = "modal:open"
	KindModalClose      Kind = "modal:close"
	KindOrderConfirmed  Kind = "order:confirmed"
	KindContactsConfirm Kind = "contacts:confirmed"
	KindOrderSuccess    Kind = "order.success"
)

// ContactsFieldKinds groups the per-field contact form changes, so one
// subscription covers the whole contacts.*:change family.
var ContactsFieldKinds = []Kind{KindContactsEmail, KindContactsPhone}

// Explicit field-to-kind mappings, one per form. A field a form does not own
// has no kind and must not produce an event.
var (
	orderFieldKinds = map[models.Field]Kind{
		models.FieldAddress: KindOrderAddress,
	}
	contactsFieldKinds = map[models.Field]Kind{
		models.FieldEmail: KindContactsEmail,
		models.FieldPhone: KindContactsPhone,
	}
)
