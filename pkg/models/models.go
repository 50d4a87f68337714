package models

// Item is a catalog product. A nil Price means the item is priceless and
// cannot be purchased.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       *int   `json:"price"`
	Description string `json:"description"`
}

// Customer holds the checkout form data, all fields default to empty.
type Customer struct {
	Payment string `json:"payment"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Field names a Customer field in form events and error maps.
type Field string

const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// FormErrors maps failing Customer fields to human-readable messages.
type FormErrors map[Field]string

// Order is the outbound order payload sent to the shop API.
type Order struct {
	Payment string   `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Total   int      `json:"total"`
	Items   []string `json:"items"`
}

// OrderSuccess is the shop API response to a placed order.
type OrderSuccess struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

// Price returns a pointer to v, for building Item literals.
func Price(v int) *int {
	return &v
}
