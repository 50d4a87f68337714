// Package view holds the DOM-facing components of the storefront. Each view
// owns the state of one HTML fragment, applies typed patches field by field
// (only provided fields are touched) and re-renders the whole fragment.
// Views never read model state; they display what they are given and emit
// named events on interaction.
package view

import (
	"fmt"
	"html/template"
	"strings"
)

// Opt is a patch field. The zero value leaves the target field untouched.
type Opt[T any] struct {
	set   bool
	value T
}

// Set builds a provided patch field.
func Set[T any](value T) Opt[T] {
	return Opt[T]{set: true, value: value}
}

// Apply overwrites dst when the field was provided.
func (o Opt[T]) Apply(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// Labels shared across fragments.
const (
	LabelPriceless   = "Бесценно"
	LabelBuy         = "Купить"
	LabelRemove      = "Удалить из корзины"
	LabelUnavailable = "Недоступно"
	LabelEmptyBasket = "Корзина пуста"
	LabelCheckout    = "Оформить"
	LabelBasketTitle = "Корзина"
	currencySuffix   = "синапсов"
)

// FormatPrice renders a nullable price: "Бесценно" for nil, "N синапсов"
// otherwise.
func FormatPrice(price *int) string {
	if price == nil {
		return LabelPriceless
	}
	return fmt.Sprintf("%d %s", *price, currencySuffix)
}

// categoryClasses maps the fixed category set to style tags. Unknown
// categories get no extra tag.
var categoryClasses = map[string]string{
	"софт-скил":      "card__category_soft",
	"другое":         "card__category_other",
	"дополнительное": "card__category_additional",
	"кнопка":         "card__category_button",
	"хард-скил":      "card__category_hard",
}

// CategoryClass returns the class list for a category badge.
func CategoryClass(category string) string {
	classes := []string{"card__category"}
	if tag, ok := categoryClasses[category]; ok {
		classes = append(classes, tag)
	}
	return strings.Join(classes, " ")
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

func execute(t *template.Template, data any) template.HTML {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		// Templates are compile-time constants; an execution failure is a
		// programming error equivalent to a missing DOM element.
		panic(fmt.Errorf("render %s: %w", t.Name(), err))
	}
	return template.HTML(sb.String())
}
