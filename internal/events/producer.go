package events

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const (
	OrderPlacedTopic = "storefront.order.placed"
)

// OrderPlacedEvent is the announce message published after the shop API
// accepts an order. It carries summary data only, no customer contacts.
type OrderPlacedEvent struct {
	OrderID   string    `json:"order_id"`
	Total     int       `json:"total"`
	ItemIDs   []string  `json:"item_ids"`
	EventTime time.Time `json:"event_time"`
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	logger   *logrus.Logger
}

func NewKafkaProducer(brokers string, logger *logrus.Logger) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, err
	}

	return &KafkaProducer{
		producer: producer,
		logger:   logger,
	}, nil
}

func (p *KafkaProducer) PublishOrderPlaced(event OrderPlacedEvent) error {
	event.EventTime = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: OrderPlacedTopic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).Error("Failed to send message to Kafka")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"topic":     OrderPlacedTopic,
		"partition": partition,
		"offset":    offset,
		"order_id":  event.OrderID,
	}).Info("Order placed event published to Kafka")

	return nil
}

func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}
