package view

import (
	"html/template"
	"strings"
	"testing"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

func TestBasketEmptyState(t *testing.T) {
	bus := events.NewBus()
	basket := NewBasket(bus)

	html := string(basket.Render(BasketPatch{Items: Set([]template.HTML(nil)), TotalCost: Set(0)}))

	if !strings.Contains(html, "Корзина пуста") {
		t.Errorf("Expected empty placeholder:\n%s", html)
	}
	if !strings.Contains(html, "disabled") {
		t.Errorf("Expected disabled checkout button:\n%s", html)
	}
}

func TestBasketWithItems(t *testing.T) {
	bus := events.NewBus()
	basket := NewBasket(bus)

	html := string(basket.Render(BasketPatch{
		Items:     Set([]template.HTML{"<li>row</li>"}),
		TotalCost: Set(30),
	}))

	if strings.Contains(html, "disabled") {
		t.Errorf("Checkout must be enabled with items:\n%s", html)
	}
	if !strings.Contains(html, "30 синапсов") {
		t.Errorf("Expected total cost:\n%s", html)
	}
	if !strings.Contains(html, "<li>row</li>") {
		t.Errorf("Expected row fragment embedded:\n%s", html)
	}
}

func TestBasketCheckoutEmitsOrderOpen(t *testing.T) {
	bus := events.NewBus()
	basket := NewBasket(bus)

	opened := 0
	bus.On(events.KindOrderOpen, func(events.Event) { opened++ })

	basket.Checkout()
	if opened != 1 {
		t.Errorf("Expected order:open, got %d", opened)
	}
}

func TestPageRender(t *testing.T) {
	bus := events.NewBus()
	page := NewPage(bus)

	html := string(page.Render(PagePatch{
		Counter: Set(2),
		Catalog: Set([]template.HTML{"<button>card</button>"}),
		Locked:  Set(true),
	}))

	if !strings.Contains(html, `<span class="header__basket-counter">2</span>`) {
		t.Errorf("Expected counter badge:\n%s", html)
	}
	if !strings.Contains(html, "page__wrapper_locked") {
		t.Errorf("Expected scroll lock class:\n%s", html)
	}

	// Unlocking only patches the lock.
	html = string(page.Render(PagePatch{Locked: Set(false)}))
	if strings.Contains(html, "page__wrapper_locked") {
		t.Errorf("Expected lock removed:\n%s", html)
	}
	if !strings.Contains(html, "<button>card</button>") {
		t.Errorf("Catalog lost on partial patch:\n%s", html)
	}
}

func TestPageOpenBasketEmits(t *testing.T) {
	bus := events.NewBus()
	page := NewPage(bus)

	opened := 0
	bus.On(events.KindBasketOpen, func(events.Event) { opened++ })

	page.OpenBasket()
	if opened != 1 {
		t.Errorf("Expected basket:open, got %d", opened)
	}
}

func TestModalLifecycle(t *testing.T) {
	bus := events.NewBus()
	modal := NewModal(bus)

	var kinds []events.Kind
	bus.OnAll(func(e events.Event) { kinds = append(kinds, e.EventKind()) })

	html := string(modal.Render(ModalPatch{Content: Set(template.HTML("<p>содержимое</p>"))}))
	if !strings.Contains(html, "modal_active") {
		t.Errorf("Expected active modal:\n%s", html)
	}
	if !strings.Contains(html, "<p>содержимое</p>") {
		t.Errorf("Expected content:\n%s", html)
	}
	if !modal.IsOpen() {
		t.Error("Expected modal open")
	}

	// Re-render while open just swaps content.
	html = string(modal.Render(ModalPatch{Content: Set(template.HTML("<p>другое</p>"))}))
	if !strings.Contains(html, "<p>другое</p>") || strings.Contains(html, "содержимое") {
		t.Errorf("Expected swapped content:\n%s", html)
	}

	html = string(modal.Close())
	if strings.Contains(html, "modal_active") {
		t.Errorf("Expected inactive modal:\n%s", html)
	}
	// Closing clears content to avoid stale fragment retention.
	if strings.Contains(html, "другое") {
		t.Errorf("Expected cleared content:\n%s", html)
	}

	expected := []events.Kind{events.KindModalOpen, events.KindModalOpen, events.KindModalClose}
	if len(kinds) != len(expected) {
		t.Fatalf("Expected events %v, got %v", expected, kinds)
	}
	for i, want := range expected {
		if kinds[i] != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, kinds[i])
		}
	}
}

func TestFormOrderRender(t *testing.T) {
	bus := events.NewBus()
	form := NewFormOrder(bus)

	html := string(form.Render(FormOrderPatch{
		Form: FormPatch{
			Valid:  Set(false),
			Errors: Set(""),
			Titles: Set([]string{"Способ оплаты", "Адрес доставки"}),
			Button: Set("Далее"),
		},
		PaymentButtons: Set([]string{"Онлайн", "При получении"}),
		Address:        Set(""),
	}))

	for _, want := range []string{"Способ оплаты", "Адрес доставки", "Онлайн", "При получении", ">Далее</button>", "disabled"} {
		if !strings.Contains(html, want) {
			t.Errorf("Fragment missing %q:\n%s", want, html)
		}
	}

	// Selecting a payment method marks its button, independent of validity.
	html = string(form.Render(FormOrderPatch{Payment: Set(PaymentCard)}))
	if !strings.Contains(html, `name="card" class="button button_alt button_alt-active"`) {
		t.Errorf("Expected active card button:\n%s", html)
	}
	if strings.Contains(html, `name="cash" class="button button_alt button_alt-active"`) {
		t.Errorf("Cash button must not be active:\n%s", html)
	}
}

func TestFormOrderEvents(t *testing.T) {
	bus := events.NewBus()
	form := NewFormOrder(bus)

	var kinds []events.Kind
	bus.OnAll(func(e events.Event) { kinds = append(kinds, e.EventKind()) })

	form.SelectPayment(PaymentCard)
	form.SelectPayment(PaymentCash)
	form.SelectPayment("bitcoin") // unknown, dropped
	form.Input(models.FieldAddress, "адрес")
	form.Input(models.FieldEmail, "a@b.c") // not an order field, dropped
	form.Submit()

	expected := []events.Kind{
		events.KindOrderCardPay,
		events.KindOrderCashPay,
		events.KindOrderAddress,
		events.KindOrderSubmit,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("Expected events %v, got %v", expected, kinds)
	}
	for i, want := range expected {
		if kinds[i] != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, kinds[i])
		}
	}
}

func TestFormContactsEvents(t *testing.T) {
	bus := events.NewBus()
	form := NewFormContacts(bus)

	var got []events.ContactsFieldChanged
	bus.OnKinds(events.ContactsFieldKinds, func(e events.Event) {
		got = append(got, e.(events.ContactsFieldChanged))
	})
	submitted := 0
	bus.On(events.KindContactsSubmit, func(events.Event) { submitted++ })

	form.Input(models.FieldEmail, "a@b.c")
	form.Input(models.FieldPhone, "123")
	form.Input(models.FieldAddress, "адрес") // not a contacts field, dropped
	form.Submit()

	if len(got) != 2 {
		t.Fatalf("Expected 2 field changes, got %d", len(got))
	}
	if got[0].Field != models.FieldEmail || got[0].Value != "a@b.c" {
		t.Errorf("Unexpected first change: %+v", got[0])
	}
	if submitted != 1 {
		t.Errorf("Expected 1 submit, got %d", submitted)
	}
}

func TestFormContactsRender(t *testing.T) {
	bus := events.NewBus()
	form := NewFormContacts(bus)

	html := string(form.Render(FormContactsPatch{
		Form: FormPatch{
			Valid:  Set(true),
			Errors: Set("Необходимо указать email; Необходимо указать телефон"),
			Titles: Set([]string{"Email", "Телефон"}),
			Button: Set("Оплатить"),
		},
		Email: Set("a@b.c"),
		Phone: Set(""),
	}))

	if strings.Contains(html, "<button type=\"submit\" class=\"button\" disabled") {
		t.Errorf("Valid form must not disable submit:\n%s", html)
	}
	if !strings.Contains(html, "Необходимо указать email; Необходимо указать телефон") {
		t.Errorf("Expected joined errors:\n%s", html)
	}
	if !strings.Contains(html, `value="a@b.c"`) {
		t.Errorf("Expected email value:\n%s", html)
	}
}

func TestSuccessOrderRender(t *testing.T) {
	success := NewSuccessOrder(nil)

	html := string(success.Render(SuccessPatch{Total: Set(1450)}))
	if !strings.Contains(html, "Списано 1450 синапсов") {
		t.Errorf("Expected amount spent:\n%s", html)
	}
}

func TestSuccessOrderClose(t *testing.T) {
	closed := 0
	success := NewSuccessOrder(func() { closed++ })

	success.Close()
	if closed != 1 {
		t.Errorf("Expected close callback, got %d", closed)
	}
}
