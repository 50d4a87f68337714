package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jogardn/larek-storefront/internal/app"
	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/jogardn/larek-storefront/internal/hub"
	"github.com/jogardn/larek-storefront/internal/shopapi"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	port := getEnv("STOREFRONT_PORT", "8080")
	apiURL := getEnv("SHOP_API_URL", "http://localhost:8082")
	cdnURL := getEnv("SHOP_CDN_URL", "http://localhost:8082/content")
	kafkaBrokers := getEnv("KAFKA_BROKERS", "")

	apiClient := shopapi.NewClient(apiURL, cdnURL, logger)

	wsHub := hub.NewHub(logger)
	go wsHub.Run()

	var announcer app.OrderAnnouncer
	if kafkaBrokers != "" {
		producer, err := events.NewKafkaProducer(kafkaBrokers, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create Kafka producer")
		}
		defer producer.Close()
		announcer = producer
		logger.WithField("brokers", kafkaBrokers).Info("Order announce producer configured")
	} else {
		logger.Info("KAFKA_BROKERS not configured - order announce disabled")
	}

	storefront := app.New(app.Config{
		API:       apiClient,
		Hub:       wsHub,
		Announcer: announcer,
		Logger:    logger,
	})

	router := storefront.Router()
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	storefront.Start()

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", port).Info("Starting storefront server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server gracefully stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
