package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jogardn/larek-storefront/internal/events"
	"github.com/sirupsen/logrus"
)

// OrderStats accumulates totals from the order placed stream.
type OrderStats struct {
	orders int
	spent  int
	logger *logrus.Logger
	mutex  sync.Mutex
}

func (s *OrderStats) HandleOrderPlaced(event events.OrderPlacedEvent) error {
	s.mutex.Lock()
	s.orders++
	s.spent += event.Total
	orders, spent := s.orders, s.spent
	s.mutex.Unlock()

	s.logger.WithFields(logrus.Fields{
		"order_id":    event.OrderID,
		"total":       event.Total,
		"items_count": len(event.ItemIDs),
		"orders_seen": orders,
		"total_spent": spent,
	}).Info("Order placed")

	return nil
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	kafkaBrokers := getEnv("KAFKA_BROKERS", "localhost:9092")
	groupID := getEnv("MONITOR_GROUP_ID", "order-monitor-group")

	stats := &OrderStats{logger: logger}

	var consumer *events.KafkaConsumer
	var err error

	// Retry connecting to Kafka
	for i := 0; i < 10; i++ {
		consumer, err = events.NewKafkaConsumer(kafkaBrokers, groupID, stats, logger)
		if err == nil {
			logger.Info("Successfully connected to Kafka")
			break
		}

		logger.WithError(err).WithField("attempt", i+1).Warn("Failed to connect to Kafka, retrying...")
		time.Sleep(5 * time.Second)
	}

	if err != nil {
		logger.WithError(err).Fatal("Failed to create Kafka consumer after retries")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.WithField("brokers", kafkaBrokers).Info("Starting order monitor")
		if err := consumer.Start(ctx); err != nil {
			logger.WithError(err).Error("Kafka consumer error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down order monitor...")

	if err := consumer.Close(); err != nil {
		logger.WithError(err).Error("Failed to close Kafka consumer")
	}
	cancel()

	logger.Info("Order monitor gracefully stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
