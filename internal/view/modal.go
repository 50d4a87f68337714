package view

import (
	"html/template"

	"github.com/jogardn/larek-storefront/internal/events"
)

// Modal is the generic overlay. Rendering swaps the body content and opens
// the overlay; closing clears the content so no stale fragment is retained.
type Modal struct {
	content template.HTML
	open    bool
	bus     *events.Bus
}

type ModalPatch struct {
	Content Opt[template.HTML]
}

var modalTemplate = mustTemplate("modal", `<div class="modal{{if .Open}} modal_active{{end}}" id="modal" data-action="modal:close">
	<div class="modal__container">
		<button class="modal__close" data-action="modal:close" aria-label="закрыть"></button>
		<div class="modal__content">{{.Content}}</div>
	</div>
</div>`)

func NewModal(bus *events.Bus) *Modal {
	return &Modal{bus: bus}
}

// Render swaps the content and opens the overlay. Re-rendering while open
// just swaps content; modal:open is announced either way.
func (m *Modal) Render(patch ModalPatch) template.HTML {
	patch.Content.Apply(&m.content)
	m.open = true
	html := m.fragment()
	m.bus.Emit(events.ModalOpen)
	return html
}

// Close hides the overlay and drops its content.
func (m *Modal) Close() template.HTML {
	m.open = false
	m.content = ""
	html := m.fragment()
	m.bus.Emit(events.ModalClose)
	return html
}

// IsOpen reports whether the overlay is currently shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Fragment re-renders the overlay in its current state without announcing
// anything, for content refreshes while open.
func (m *Modal) Fragment(content template.HTML) template.HTML {
	m.content = content
	return m.fragment()
}

// Current returns the overlay as last rendered.
func (m *Modal) Current() template.HTML {
	return m.fragment()
}

func (m *Modal) fragment() template.HTML {
	return execute(modalTemplate, struct {
		Open    bool
		Content template.HTML
	}{m.open, m.content})
}
