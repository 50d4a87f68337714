package view

import "html/template"

// CardState is the shared state of the card family: title, price, image,
// category plus the variant-specific index and basket-membership flag.
type CardState struct {
	ID          string
	Title       string
	Image       string
	Category    string
	Description string
	Price       *int
	Index       int
	InBasket    bool
}

// CardPatch updates a card. Zero-valued fields leave the state untouched.
type CardPatch struct {
	ID          Opt[string]
	Title       Opt[string]
	Image       Opt[string]
	Category    Opt[string]
	Description Opt[string]
	Price       Opt[*int]
	Index       Opt[int]
	InBasket    Opt[bool]
}

func (p CardPatch) apply(s *CardState) {
	p.ID.Apply(&s.ID)
	p.Title.Apply(&s.Title)
	p.Image.Apply(&s.Image)
	p.Category.Apply(&s.Category)
	p.Description.Apply(&s.Description)
	p.Price.Apply(&s.Price)
	p.Index.Apply(&s.Index)
	p.InBasket.Apply(&s.InBasket)
}

type cardData struct {
	CardState
	PriceText      string
	CategoryClass  string
	ButtonLabel    string
	ButtonDisabled bool
}

func (s CardState) data() cardData {
	d := cardData{
		CardState:     s,
		PriceText:     FormatPrice(s.Price),
		CategoryClass: CategoryClass(s.Category),
	}
	switch {
	case s.Price == nil:
		// Priceless items cannot be bought, whatever the basket says.
		d.ButtonLabel = LabelUnavailable
		d.ButtonDisabled = true
	case s.InBasket:
		d.ButtonLabel = LabelRemove
	default:
		d.ButtonLabel = LabelBuy
	}
	return d
}

var cardCatalogTemplate = mustTemplate("card-catalog", `<button class="gallery__item card" data-id="{{.ID}}" data-action="card:select">
	<span class="{{.CategoryClass}}">{{.Category}}</span>
	<h2 class="card__title">{{.Title}}</h2>
	<img class="card__image" src="{{.Image}}" alt="{{.Title}}" />
	<span class="card__price">{{.PriceText}}</span>
</button>`)

// CardCatalog renders one item tile of the catalog grid. Clicking the tile
// selects the card (card:select).
type CardCatalog struct {
	state CardState
}

func NewCardCatalog() *CardCatalog {
	return &CardCatalog{}
}

func (c *CardCatalog) Render(patch CardPatch) template.HTML {
	patch.apply(&c.state)
	return execute(cardCatalogTemplate, c.state.data())
}

var cardPreviewTemplate = mustTemplate("card-preview", `<div class="card card_full" data-id="{{.ID}}">
	<img class="card__image" src="{{.Image}}" alt="{{.Title}}" />
	<div class="card__column">
		<span class="{{.CategoryClass}}">{{.Category}}</span>
		<h2 class="card__title">{{.Title}}</h2>
		<p class="card__text">{{.Description}}</p>
		<div class="card__row">
			<button class="card__button" data-action="card:buy"{{if .ButtonDisabled}} disabled{{end}}>{{.ButtonLabel}}</button>
			<span class="card__price">{{.PriceText}}</span>
		</div>
	</div>
</div>`)

// CardPreview renders the full item view inside the modal. Its purchase
// button toggles between buy and remove, or shows a disabled unavailable
// state for priceless items.
type CardPreview struct {
	state    CardState
	onButton func()
}

func NewCardPreview(onButton func()) *CardPreview {
	return &CardPreview{onButton: onButton}
}

func (c *CardPreview) Render(patch CardPatch) template.HTML {
	patch.apply(&c.state)
	return execute(cardPreviewTemplate, c.state.data())
}

// ID reports the item currently shown in the preview.
func (c *CardPreview) ID() string {
	return c.state.ID
}

// PressButton reports a click on the purchase button.
func (c *CardPreview) PressButton() {
	if c.onButton != nil {
		c.onButton()
	}
}

var cardBasketTemplate = mustTemplate("card-basket", `<li class="basket__item card card_compact" data-id="{{.ID}}">
	<span class="basket__item-index">{{.Index}}</span>
	<span class="card__title">{{.Title}}</span>
	<span class="card__price">{{.PriceText}}</span>
	<button class="basket__item-delete" data-action="basket:delete" aria-label="удалить"></button>
</li>`)

// CardBasket renders one basket row: position, title, price, delete button.
type CardBasket struct {
	state CardState
}

func NewCardBasket() *CardBasket {
	return &CardBasket{}
}

func (c *CardBasket) Render(patch CardPatch) template.HTML {
	patch.apply(&c.state)
	return execute(cardBasketTemplate, c.state.data())
}
