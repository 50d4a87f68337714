package view

import (
	"html/template"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/pkg/models"
)

// formState is the shared checkout form chrome: step titles, submit button
// label, inline error string and the disabled-until-valid submit state.
type formState struct {
	Titles []string
	Button string
	Valid  bool
	Errors string
}

// FormPatch updates the shared form chrome.
type FormPatch struct {
	Titles Opt[[]string]
	Button Opt[string]
	Valid  Opt[bool]
	Errors Opt[string]
}

func (p FormPatch) apply(s *formState) {
	p.Titles.Apply(&s.Titles)
	p.Button.Apply(&s.Button)
	p.Valid.Apply(&s.Valid)
	p.Errors.Apply(&s.Errors)
}

func (s formState) title(i int) string {
	if i < len(s.Titles) {
		return s.Titles[i]
	}
	return ""
}

// Payment method button names, fixed by the protocol.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

var paymentKinds = map[string]events.Signal{
	PaymentCard: events.OrderCardPay,
	PaymentCash: events.OrderCashPay,
}

var formOrderTemplate = mustTemplate("form-order", `<form class="form" name="order" data-action="order:submit">
	<div class="order__field">
		<h2 class="modal__title">{{.Title0}}</h2>
		<div class="order__buttons">{{range .Buttons}}
			<button type="button" name="{{.Name}}" class="button button_alt{{if .Active}} button_alt-active{{end}}" data-action="order.{{.Name}}:selected">{{.Label}}</button>{{end}}
		</div>
	</div>
	<div class="order__field">
		<h2 class="modal__title">{{.Title1}}</h2>
		<input class="form__input" type="text" name="address" value="{{.Address}}" placeholder="Введите адрес" data-action="order.address:change" />
	</div>
	<div class="modal__actions">
		<button type="submit" class="button order__button"{{if not .Valid}} disabled{{end}}>{{.Button}}</button>
		<span class="form__errors">{{.Errors}}</span>
	</div>
</form>`)

// FormOrder is the first checkout step: two exclusive payment method buttons
// and the delivery address.
type FormOrder struct {
	form          formState
	paymentLabels []string
	payment       string
	address       string
	bus           *events.Bus
}

// FormOrderPatch extends the shared chrome with the order step fields.
type FormOrderPatch struct {
	Form           FormPatch
	PaymentButtons Opt[[]string]
	Payment        Opt[string]
	Address        Opt[string]
}

func NewFormOrder(bus *events.Bus) *FormOrder {
	return &FormOrder{bus: bus}
}

func (f *FormOrder) Render(patch FormOrderPatch) template.HTML {
	patch.Form.apply(&f.form)
	patch.PaymentButtons.Apply(&f.paymentLabels)
	patch.Payment.Apply(&f.payment)
	patch.Address.Apply(&f.address)

	type button struct {
		Name   string
		Label  string
		Active bool
	}
	buttons := make([]button, 0, 2)
	for i, name := range []string{PaymentCard, PaymentCash} {
		label := ""
		if i < len(f.paymentLabels) {
			label = f.paymentLabels[i]
		}
		buttons = append(buttons, button{Name: name, Label: label, Active: f.payment == name})
	}

	return execute(formOrderTemplate, struct {
		formState
		Title0  string
		Title1  string
		Buttons []button
		Address string
	}{f.form, f.form.title(0), f.form.title(1), buttons, f.address})
}

// SelectPayment reports a click on one of the payment method buttons.
// Unknown button names are ignored.
func (f *FormOrder) SelectPayment(name string) {
	if kind, ok := paymentKinds[name]; ok {
		f.bus.Emit(kind)
	}
}

// Input reports an input event on a field the order form owns.
func (f *FormOrder) Input(field models.Field, value string) {
	if field != models.FieldAddress {
		return
	}
	f.bus.Emit(events.OrderFieldChanged{Field: field, Value: value})
}

// Submit reports a form submission.
func (f *FormOrder) Submit() {
	f.bus.Emit(events.OrderSubmit)
}

var formContactsTemplate = mustTemplate("form-contacts", `<form class="form" name="contacts" data-action="contacts:submit">
	<div class="order__field">
		<h2 class="modal__title">{{.Title0}}</h2>
		<input class="form__input" type="text" name="email" value="{{.Email}}" placeholder="Введите email" data-action="contacts.email:change" />
	</div>
	<div class="order__field">
		<h2 class="modal__title">{{.Title1}}</h2>
		<input class="form__input" type="text" name="phone" value="{{.Phone}}" placeholder="+7 (" data-action="contacts.phone:change" />
	</div>
	<div class="modal__actions">
		<button type="submit" class="button"{{if not .Valid}} disabled{{end}}>{{.Button}}</button>
		<span class="form__errors">{{.Errors}}</span>
	</div>
</form>`)

// FormContacts is the second checkout step: email and phone.
type FormContacts struct {
	form  formState
	email string
	phone string
	bus   *events.Bus
}

// FormContactsPatch extends the shared chrome with the contact fields.
type FormContactsPatch struct {
	Form  FormPatch
	Email Opt[string]
	Phone Opt[string]
}

func NewFormContacts(bus *events.Bus) *FormContacts {
	return &FormContacts{bus: bus}
}

func (f *FormContacts) Render(patch FormContactsPatch) template.HTML {
	patch.Form.apply(&f.form)
	patch.Email.Apply(&f.email)
	patch.Phone.Apply(&f.phone)

	return execute(formContactsTemplate, struct {
		formState
		Title0 string
		Title1 string
		Email  string
		Phone  string
	}{f.form, f.form.title(0), f.form.title(1), f.email, f.phone})
}

// Input reports an input event on a field the contacts form owns.
func (f *FormContacts) Input(field models.Field, value string) {
	if field != models.FieldEmail && field != models.FieldPhone {
		return
	}
	f.bus.Emit(events.ContactsFieldChanged{Field: field, Value: value})
}

// Submit reports a form submission.
func (f *FormContacts) Submit() {
	f.bus.Emit(events.ContactsSubmit)
}
