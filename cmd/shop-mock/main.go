package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jogardn/larek-storefront/pkg/models"
	"github.com/sirupsen/logrus"
)

// ShopStore is the in-memory backend state: a fixed catalog and the orders
// accepted so far.
type ShopStore struct {
	catalog []models.Item
	orders  map[string]models.Order
	mutex   sync.RWMutex
}

func NewShopStore() *ShopStore {
	return &ShopStore{
		catalog: defaultCatalog(),
		orders:  make(map[string]models.Order),
	}
}

func defaultCatalog() []models.Item {
	return []models.Item{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "+1 час в сутках",
			Image:       "/5_Dots.svg",
			Category:    "софт-скил",
			Price:       models.Price(750),
			Description: "Если планируете решать задачи в тренажёре, берите два.",
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "HEX-леденец",
			Image:       "/Shell.svg",
			Category:    "другое",
			Price:       models.Price(1450),
			Description: "Лизните, чтобы понять, как устроен код.",
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Мамка-таймер",
			Image:       "/Asterisk_2.svg",
			Category:    "софт-скил",
			Price:       nil,
			Description: "Будет стоять над душой и не давать прокрастинировать.",
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Фреймворк куки судьбы",
			Image:       "/Soft_Flower.svg",
			Category:    "дополнительное",
			Price:       models.Price(2500),
			Description: "Откройте эти куки, чтобы узнать, какой фреймворк вы должны изучить дальше.",
		},
		{
			ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
			Title:       "БЭМ-пилюлька",
			Image:       "/Pill.svg",
			Category:    "другое",
			Price:       models.Price(1500),
			Description: "Измените локацию для поиска работы.",
		},
	}
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	store := NewShopStore()

	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/product", listItems(logger, store)).Methods("GET")
	router.HandleFunc("/product/{id}", getItem(logger, store)).Methods("GET")
	router.HandleFunc("/order", createOrder(logger, store)).Methods("POST")
	router.PathPrefix("/content/").HandlerFunc(serveImage).Methods("GET")

	port := getEnv("SHOP_MOCK_PORT", "8082")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", port).Info("Starting shop mock server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down shop mock server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server forced to shutdown")
	}

	logger.Info("Shop mock server gracefully stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "shop-mock",
	})
}

func listItems(logger *logrus.Logger, store *ShopStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.mutex.RLock()
		items := append([]models.Item(nil), store.catalog...)
		store.mutex.RUnlock()

		logger.WithField("count", len(items)).Info("Serving catalog")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": len(items),
			"items": items,
		})
	}
}

func getItem(logger *logrus.Logger, store *ShopStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := mux.Vars(r)["id"]

		store.mutex.RLock()
		defer store.mutex.RUnlock()

		for _, item := range store.catalog {
			if item.ID == itemID {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(item)
				return
			}
		}

		logger.WithField("item_id", itemID).Warn("Item not found")
		respondWithError(w, http.StatusNotFound, "Item not found")
	}
}

func createOrder(logger *logrus.Logger, store *ShopStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var order models.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			logger.WithError(err).Error("Failed to decode order")
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if msg := validateOrder(store, order); msg != "" {
			logger.WithField("reason", msg).Warn("Rejecting order")
			respondWithError(w, http.StatusBadRequest, msg)
			return
		}

		orderID := uuid.New().String()

		store.mutex.Lock()
		store.orders[orderID] = order
		total := len(store.orders)
		store.mutex.Unlock()

		logger.WithFields(logrus.Fields{
			"order_id":     orderID,
			"total":        order.Total,
			"items_count":  len(order.Items),
			"total_stored": total,
		}).Info("Order accepted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.OrderSuccess{
			ID:    orderID,
			Total: order.Total,
		})
	}
}

func validateOrder(store *ShopStore, order models.Order) string {
	if order.Payment == "" || order.Address == "" || order.Email == "" || order.Phone == "" {
		return "Missing customer data"
	}
	if len(order.Items) == 0 {
		return "Order has no items"
	}

	store.mutex.RLock()
	defer store.mutex.RUnlock()

	byID := make(map[string]models.Item, len(store.catalog))
	for _, item := range store.catalog {
		byID[item.ID] = item
	}

	expected := 0
	for _, id := range order.Items {
		item, ok := byID[id]
		if !ok {
			return fmt.Sprintf("Unknown item: %s", id)
		}
		if item.Price == nil {
			return fmt.Sprintf("Item is not for sale: %s", id)
		}
		expected += *item.Price
	}

	if expected != order.Total {
		return fmt.Sprintf("Total mismatch: expected %d, got %d", expected, order.Total)
	}
	return ""
}

func serveImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="120"/>`))
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
