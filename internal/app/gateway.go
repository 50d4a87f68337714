package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/internal/view"
	"github.com/jogardn/larek-storefront/pkg/models"
	"github.com/sirupsen/logrus"
)

// inputRequest is the body of the form input routes.
type inputRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Router builds the UI gateway: the document route, the interaction routes
// translating browser actions into view events,
// and a health endpoint. The WebSocket route is attached by the caller, next
// to the hub it owns.
func (a *App) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", a.handleIndex).Methods("GET")
	router.HandleFunc("/health", a.handleHealth).Methods("GET")
	router.HandleFunc("/static/styles.css", handleStylesheet).Methods("GET")

	ui := router.PathPrefix("/ui").Subrouter()
	ui.HandleFunc("/basket/open", a.interaction(func() { a.page.OpenBasket() })).Methods("POST")
	ui.HandleFunc("/basket/checkout", a.interaction(func() { a.basket.Checkout() })).Methods("POST")
	ui.HandleFunc("/basket/items/{id}/delete", a.handleBasketDelete).Methods("POST")
	ui.HandleFunc("/cards/{id}/select", a.handleCardSelect).Methods("POST")
	ui.HandleFunc("/preview/button", a.interaction(func() { a.preview.PressButton() })).Methods("POST")
	ui.HandleFunc("/order/payment/{method}", a.handlePaymentSelect).Methods("POST")
	ui.HandleFunc("/order/input", a.handleOrderInput).Methods("POST")
	ui.HandleFunc("/order/submit", a.interaction(func() { a.order.Submit() })).Methods("POST")
	ui.HandleFunc("/contacts/input", a.handleContactsInput).Methods("POST")
	ui.HandleFunc("/contacts/submit", a.interaction(func() { a.contacts.Submit() })).Methods("POST")
	ui.HandleFunc("/success/close", a.interaction(func() { a.success.Close() })).Methods("POST")
	ui.HandleFunc("/modal/close", a.interaction(func() {
		a.pushModal(a.modal.Close())
	})).Methods("POST")

	router.Use(loggingMiddleware(a.logger))

	return router
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	page := a.page.Render(view.PagePatch{})
	modal := a.modal.Current()
	a.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(view.RenderLayout(page, modal)))
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "storefront",
	})
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write([]byte("/* storefront styles are built separately */\n"))
}

// interaction wraps a parameterless view interaction into a handler. The
// lock serializes interactions, matching the single-threaded event loop the
// views assume.
func (a *App) interaction(fn func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		fn()
		a.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *App) handleCardSelect(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.catalogData.Items() {
		if item.ID == id {
			a.bus.Emit(events.CardSelected{Item: item})
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	a.logger.WithField("item_id", id).Warn("Card select for unknown item")
	http.Error(w, "item not found", http.StatusNotFound)
}

func (a *App) handleBasketDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.basketData.Items() {
		if item.ID == id {
			a.bus.Emit(events.BasketDelete{Item: item})
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	a.logger.WithField("item_id", id).Warn("Basket delete for unknown item")
	http.Error(w, "item not found", http.StatusNotFound)
}

func (a *App) handlePaymentSelect(w http.ResponseWriter, r *http.Request) {
	method := mux.Vars(r)["method"]
	if method != view.PaymentCard && method != view.PaymentCash {
		http.Error(w, "unknown payment method", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.order.SelectPayment(method)
	a.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleOrderInput(w http.ResponseWriter, r *http.Request) {
	a.handleInput(w, r, func(field models.Field, value string) {
		a.order.Input(field, value)
	})
}

func (a *App) handleContactsInput(w http.ResponseWriter, r *http.Request) {
	a.handleInput(w, r, func(field models.Field, value string) {
		a.contacts.Input(field, value)
	})
}

func (a *App) handleInput(w http.ResponseWriter, r *http.Request, input func(models.Field, string)) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.WithError(err).Error("Failed to decode input request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	input(models.Field(req.Field), req.Value)
	a.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).Milliseconds(),
			}).Info("Request completed")
		})
	}
}
