// Package app is the storefront composition root: it owns the single
// instances of every model and view, the shop API client, the fragment hub
// and the announce producer, and declares the event-handler graph connecting
// them.
package app

import (
	"html/template"
	"strings"
	"sync"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/internal/model"
	"github.com/jogardn/larek-storefront/internal/view"
	"github.com/jogardn/larek-storefront/pkg/models"
	"github.com/sirupsen/logrus"
)

// ShopAPI is the remote catalog/order collaborator.
type ShopAPI interface {
	GetItems() ([]models.Item, error)
	PlaceOrder(order models.Order) (*models.OrderSuccess, error)
	ImageURL(path string) string
}

// FragmentPusher delivers re-rendered fragments to connected browsers.
type FragmentPusher interface {
	PushFragment(target, html string)
}

// OrderAnnouncer publishes placed orders for downstream consumers.
type OrderAnnouncer interface {
	PublishOrderPlaced(event events.OrderPlacedEvent) error
}

// Fragment target ids, matched by element ids in the layout.
const (
	targetPage  = "page"
	targetModal = "modal"
)

// modalSection tracks which view currently fills the modal, so model-driven
// re-renders know whether their fragment is on screen.
type modalSection int

const (
	sectionNone modalSection = iota
	sectionPreview
	sectionBasket
	sectionOrder
	sectionContacts
	sectionSuccess
)

// Checkout form labels.
var (
	orderTitles     = []string{"Способ оплаты", "Адрес доставки"}
	orderButton     = "Далее"
	paymentLabels   = []string{"Онлайн", "При получении"}
	contactsTitles  = []string{"Email", "Телефон"}
	contactsButton  = "Оплатить"
	errorsSeparator = "; "
)

type App struct {
	bus       *events.Bus
	logger    *logrus.Logger
	api       ShopAPI
	hub       FragmentPusher
	announcer OrderAnnouncer

	catalogData  *model.Catalog
	basketData   *model.Basket
	customerData *model.Customer

	page     *view.Page
	modal    *view.Modal
	basket   *view.Basket
	order    *view.FormOrder
	contacts *view.FormContacts
	preview  *view.CardPreview
	success  *view.SuccessOrder

	section modalSection

	// Handlers assume a single-threaded event loop; mu serializes
	// interactions arriving on concurrent HTTP handlers.
	mu sync.Mutex
}

// Config carries the collaborators of the composition root. Hub and
// Announcer are optional.
type Config struct {
	API       ShopAPI
	Hub       FragmentPusher
	Announcer OrderAnnouncer
	Logger    *logrus.Logger
}

func New(cfg Config) *App {
	bus := events.NewBus()

	a := &App{
		bus:       bus,
		logger:    cfg.Logger,
		api:       cfg.API,
		hub:       cfg.Hub,
		announcer: cfg.Announcer,

		catalogData:  model.NewCatalog(bus),
		basketData:   model.NewBasket(bus),
		customerData: model.NewCustomer(bus),

		page:     view.NewPage(bus),
		modal:    view.NewModal(bus),
		basket:   view.NewBasket(bus),
		order:    view.NewFormOrder(bus),
		contacts: view.NewFormContacts(bus),
	}
	a.preview = view.NewCardPreview(func() {
		bus.Emit(events.CardBuy)
	})
	a.success = view.NewSuccessOrder(func() {
		a.pushModal(a.modal.Close())
		a.section = sectionNone
		bus.Emit(events.OrderSuccess)
	})

	a.wire()
	return a
}

// Start kicks off the startup catalog fetch. The fetch runs in the
// background; a failure is logged and leaves the catalog empty.
func (a *App) Start() {
	go func() {
		items, err := a.api.GetItems()
		if err != nil {
			a.logger.WithError(err).Error("Failed to fetch catalog")
			return
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		a.catalogData.SetCatalog(items)
	}()
}

// Bus exposes the event bus, mainly for tests and the onAll log tap.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// wire declares the full event-handler graph. Handlers run synchronously on
// the emitting goroutine, nested emits included.
func (a *App) wire() {
	a.bus.OnAll(func(e events.Event) {
		a.logger.WithField("event", string(e.EventKind())).Debug("Event emitted")
	})

	a.bus.On(events.KindCatalogChanged, a.onCatalogChanged)
	a.bus.On(events.KindBasketChanged, a.onBasketChanged)
	a.bus.On(events.KindBasketOpen, a.onBasketOpen)
	a.bus.On(events.KindBasketDelete, a.onBasketDelete)
	a.bus.On(events.KindCardSelect, a.onCardSelect)
	a.bus.On(events.KindCardBuy, a.onCardBuy)
	a.bus.On(events.KindOrderOpen, a.onOrderOpen)
	a.bus.On(events.KindOrderCardPay, func(events.Event) { a.onPaymentSelected(view.PaymentCard) })
	a.bus.On(events.KindOrderCashPay, func(events.Event) { a.onPaymentSelected(view.PaymentCash) })
	a.bus.On(events.KindOrderAddress, a.onOrderFieldChanged)
	a.bus.On(events.KindOrderErrors, a.onOrderErrorsChanged)
	a.bus.On(events.KindOrderSubmit, a.onOrderSubmit)
	a.bus.OnKinds(events.ContactsFieldKinds, a.onContactsFieldChanged)
	a.bus.On(events.KindContactsErrors, a.onContactsErrorsChanged)
	a.bus.On(events.KindContactsSubmit, a.onContactsSubmit)
	a.bus.On(events.KindModalOpen, func(events.Event) {
		a.pushPage(a.page.Render(view.PagePatch{Locked: view.Set(true)}))
	})
	a.bus.On(events.KindModalClose, func(events.Event) {
		a.section = sectionNone
		a.pushPage(a.page.Render(view.PagePatch{Locked: view.Set(false)}))
	})
}

func (a *App) onCatalogChanged(events.Event) {
	items := a.catalogData.Items()
	cards := make([]template.HTML, 0, len(items))
	for _, item := range items {
		card := view.NewCardCatalog()
		cards = append(cards, card.Render(a.cardPatch(item)))
	}
	a.pushPage(a.page.Render(view.PagePatch{Catalog: view.Set(cards)}))
}

// Basket re-renders always recompute the counter and the total together.
func (a *App) onBasketChanged(events.Event) {
	pageHTML := a.page.Render(view.PagePatch{Counter: view.Set(a.basketData.TotalAmount())})

	items := a.basketData.Items()
	rows := make([]template.HTML, 0, len(items))
	for i, item := range items {
		card := view.NewCardBasket()
		patch := a.cardPatch(item)
		patch.Index = view.Set(i + 1)
		rows = append(rows, card.Render(patch))
	}
	basketHTML := a.basket.Render(view.BasketPatch{
		Items:     view.Set(rows),
		TotalCost: view.Set(a.basketData.TotalCost()),
	})

	a.pushPage(pageHTML)
	if a.section == sectionBasket {
		a.pushModal(a.modal.Fragment(basketHTML))
	}
}

func (a *App) onBasketOpen(events.Event) {
	a.section = sectionBasket
	a.pushModal(a.modal.Render(view.ModalPatch{
		Content: view.Set(a.basket.Render(view.BasketPatch{})),
	}))
}

func (a *App) onBasketDelete(e events.Event) {
	item := e.(events.BasketDelete).Item
	a.basketData.DeleteItem(item.ID)
	previewHTML := a.preview.Render(view.CardPatch{
		InBasket: view.Set(a.basketData.IsInBasket(item.ID)),
	})
	if a.section == sectionPreview {
		a.pushModal(a.modal.Fragment(previewHTML))
	}
}

func (a *App) onCardSelect(e events.Event) {
	item := e.(events.CardSelected).Item
	patch := a.cardPatch(item)
	patch.InBasket = view.Set(a.basketData.IsInBasket(item.ID))
	a.section = sectionPreview
	a.pushModal(a.modal.Render(view.ModalPatch{
		Content: view.Set(a.preview.Render(patch)),
	}))
	a.catalogData.SetItem(item)
}

func (a *App) onCardBuy(events.Event) {
	id := a.preview.ID()
	if a.basketData.IsInBasket(id) {
		a.basketData.DeleteItem(id)
	} else if item, ok := a.catalogData.Item(); ok && item.Price != nil {
		// Priceless items never enter the basket; the preview button is
		// disabled for them, this closes the gap for direct calls.
		a.basketData.AddItem(item)
	}
	previewHTML := a.preview.Render(view.CardPatch{
		InBasket: view.Set(a.basketData.IsInBasket(id)),
	})
	if a.section == sectionPreview {
		a.pushModal(a.modal.Fragment(previewHTML))
	}
}

func (a *App) onOrderOpen(events.Event) {
	a.section = sectionOrder
	a.pushModal(a.modal.Render(view.ModalPatch{
		Content: view.Set(a.order.Render(view.FormOrderPatch{
			Form: view.FormPatch{
				Valid:  view.Set(false),
				Errors: view.Set(""),
				Titles: view.Set(orderTitles),
				Button: view.Set(orderButton),
			},
			PaymentButtons: view.Set(paymentLabels),
			Address:        view.Set(""),
		})),
	}))
}

func (a *App) onPaymentSelected(method string) {
	orderHTML := a.order.Render(view.FormOrderPatch{Payment: view.Set(method)})
	if a.section == sectionOrder {
		a.pushModal(a.modal.Fragment(orderHTML))
	}
	a.customerData.SetOrderData(models.FieldPayment, method)
}

func (a *App) onOrderFieldChanged(e events.Event) {
	change := e.(events.OrderFieldChanged)
	a.customerData.SetOrderData(change.Field, change.Value)
}

func (a *App) onOrderErrorsChanged(e events.Event) {
	errs := e.(events.OrderErrorsChanged).Errors
	orderHTML := a.order.Render(view.FormOrderPatch{
		Form: view.FormPatch{
			Valid:  view.Set(len(errs) == 0),
			Errors: view.Set(joinErrors(errs, models.FieldPayment, models.FieldAddress)),
		},
	})
	if a.section == sectionOrder {
		a.pushModal(a.modal.Fragment(orderHTML))
	}
}

func (a *App) onOrderSubmit(events.Event) {
	a.section = sectionContacts
	a.pushModal(a.modal.Render(view.ModalPatch{
		Content: view.Set(a.contacts.Render(view.FormContactsPatch{
			Form: view.FormPatch{
				Valid:  view.Set(false),
				Errors: view.Set(""),
				Titles: view.Set(contactsTitles),
				Button: view.Set(contactsButton),
			},
			Email: view.Set(""),
			Phone: view.Set(""),
		})),
	}))
}

func (a *App) onContactsFieldChanged(e events.Event) {
	change := e.(events.ContactsFieldChanged)
	a.customerData.SetContactsData(change.Field, change.Value)
}

func (a *App) onContactsErrorsChanged(e events.Event) {
	errs := e.(events.ContactsErrorsChanged).Errors
	contactsHTML := a.contacts.Render(view.FormContactsPatch{
		Form: view.FormPatch{
			Valid:  view.Set(len(errs) == 0),
			Errors: view.Set(joinErrors(errs, models.FieldEmail, models.FieldPhone)),
		},
	})
	if a.section == sectionContacts {
		a.pushModal(a.modal.Fragment(contactsHTML))
	}
}

func (a *App) onContactsSubmit(events.Event) {
	customer := a.customerData.Data()
	order := models.Order{
		Payment: customer.Payment,
		Address: customer.Address,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Total:   a.basketData.TotalCost(),
		Items:   a.basketData.ItemIDs(),
	}

	result, err := a.api.PlaceOrder(order)
	if err != nil {
		a.logger.WithError(err).Error("Failed to place order")
		return
	}

	a.section = sectionSuccess
	a.pushModal(a.modal.Render(view.ModalPatch{
		Content: view.Set(a.success.Render(view.SuccessPatch{Total: view.Set(result.Total)})),
	}))
	a.basketData.Clear()
	a.customerData.Clear()
	a.bus.Emit(events.OrderSuccess)

	if a.announcer != nil {
		announce := events.OrderPlacedEvent{
			OrderID: result.ID,
			Total:   result.Total,
			ItemIDs: order.Items,
		}
		if err := a.announcer.PublishOrderPlaced(announce); err != nil {
			// Don't fail the user flow, just log the error.
			a.logger.WithError(err).Error("Failed to publish order placed event")
		}
	}
}

func (a *App) cardPatch(item models.Item) view.CardPatch {
	return view.CardPatch{
		ID:          view.Set(item.ID),
		Title:       view.Set(item.Title),
		Image:       view.Set(a.api.ImageURL(item.Image)),
		Category:    view.Set(item.Category),
		Description: view.Set(item.Description),
		Price:       view.Set(item.Price),
	}
}

// joinErrors concatenates the messages of the present fields with "; " in
// the given fixed order.
func joinErrors(errs models.FormErrors, order ...models.Field) string {
	parts := make([]string, 0, len(order))
	for _, field := range order {
		if msg, ok := errs[field]; ok && msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, errorsSeparator)
}

func (a *App) pushPage(html template.HTML) {
	if a.hub != nil {
		a.hub.PushFragment(targetPage, string(html))
	}
}

func (a *App) pushModal(html template.HTML) {
	if a.hub != nil {
		a.hub.PushFragment(targetModal, string(html))
	}
}
