package view

import (
	"html/template"

	"github.com/jogardn/larek-storefront/internal/events"
)

// BasketState lists the basket rows and the running total. An empty basket
// shows a placeholder and disables the checkout button.
type BasketState struct {
	Items     []template.HTML
	TotalCost int
}

type BasketPatch struct {
	Items     Opt[[]template.HTML]
	TotalCost Opt[int]
}

var basketTemplate = mustTemplate("basket", `<div class="basket">
	<h2 class="modal__title">{{.Title}}</h2>
	{{if .Items}}<ul class="basket__list">{{range .Items}}
		{{.}}{{end}}
	</ul>{{else}}<p class="basket__empty">{{.Empty}}</p>{{end}}
	<div class="modal__actions">
		<button class="basket__button" data-action="order:open"{{if not .Items}} disabled{{end}}>{{.Button}}</button>
		<span class="basket__price">{{.TotalText}}</span>
	</div>
</div>`)

type Basket struct {
	state BasketState
	bus   *events.Bus
}

func NewBasket(bus *events.Bus) *Basket {
	return &Basket{bus: bus}
}

func (b *Basket) Render(patch BasketPatch) template.HTML {
	patch.Items.Apply(&b.state.Items)
	patch.TotalCost.Apply(&b.state.TotalCost)
	return execute(basketTemplate, struct {
		BasketState
		Title     string
		Empty     string
		Button    string
		TotalText string
	}{b.state, LabelBasketTitle, LabelEmptyBasket, LabelCheckout, FormatPrice(&b.state.TotalCost)})
}

// Checkout reports a click on the checkout button.
func (b *Basket) Checkout() {
	b.bus.Emit(events.OrderOpen)
}
