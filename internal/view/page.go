package view

import (
	"html/template"

	"github.com/jogardn/larek-storefront/internal/events"
)

// PageState is the top-level page fragment: basket counter badge, catalog
// grid and the scroll lock toggled while a modal is open.
type PageState struct {
	Counter int
	Catalog []template.HTML
	Locked  bool
}

type PagePatch struct {
	Counter Opt[int]
	Catalog Opt[[]template.HTML]
	Locked  Opt[bool]
}

var pageTemplate = mustTemplate("page", `<div class="page__wrapper{{if .Locked}} page__wrapper_locked{{end}}" id="page">
	<header class="header">
		<a class="header__logo" href="/">Веб-ларёк</a>
		<button class="header__basket" data-action="basket:open" aria-label="корзина">
			<span class="header__basket-counter">{{.Counter}}</span>
		</button>
	</header>
	<main class="gallery">{{range .Catalog}}
		{{.}}{{end}}
	</main>
</div>`)

type Page struct {
	state PageState
	bus   *events.Bus
}

func NewPage(bus *events.Bus) *Page {
	return &Page{bus: bus}
}

func (p *Page) Render(patch PagePatch) template.HTML {
	patch.Counter.Apply(&p.state.Counter)
	patch.Catalog.Apply(&p.state.Catalog)
	patch.Locked.Apply(&p.state.Locked)
	return execute(pageTemplate, p.state)
}

// OpenBasket reports a click on the header basket icon.
func (p *Page) OpenBasket() {
	p.bus.Emit(events.BasketOpen)
}
