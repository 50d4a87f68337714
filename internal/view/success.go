package view

import (
	"fmt"
	"html/template"
)

const (
	successTitle  = "Заказ оформлен"
	successButton = "За новыми покупками!"
)

// SuccessOrder shows the amount spent after a completed order. Closing runs a
// caller-supplied callback instead of a bus event, so the orchestrator can
// close the modal first.
type SuccessOrder struct {
	total   int
	onClose func()
}

type SuccessPatch struct {
	Total Opt[int]
}

var successTemplate = mustTemplate("success", `<div class="order-success">
	<h2 class="order-success__title">{{.Title}}</h2>
	<p class="order-success__description">{{.Text}}</p>
	<button class="order-success__close" data-action="success:close">{{.Button}}</button>
</div>`)

func NewSuccessOrder(onClose func()) *SuccessOrder {
	return &SuccessOrder{onClose: onClose}
}

func (s *SuccessOrder) Render(patch SuccessPatch) template.HTML {
	patch.Total.Apply(&s.total)
	return execute(successTemplate, struct {
		Title  string
		Text   string
		Button string
	}{successTitle, fmt.Sprintf("Списано %d %s", s.total, currencySuffix), successButton})
}

// Close reports a click on the close button.
func (s *SuccessOrder) Close() {
	if s.onClose != nil {
		s.onClose()
	}
}
