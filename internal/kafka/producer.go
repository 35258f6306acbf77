package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"ms-events/internal/models"
)

const (
	TopicEventCreated   = "dev-events.event.created"
	TopicEventUpdated   = "dev-events.event.updated"
	TopicBookingCreated = "dev-events.booking.created"
)

// Topics lists every topic the producer writes to, for startup creation.
var Topics = []string{TopicEventCreated, TopicEventUpdated, TopicBookingCreated}

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer}
}

func (p *Producer) publish(topic, key string, payload any) error {
	msgBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	fmt.Printf("Publishing to Kafka [%s]: %s\n", topic, string(msgBytes))

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: msgBytes,
		},
	)
}

// PublishEventCreated streams the event creation to Kafka
func (p *Producer) PublishEventCreated(event models.Event) error {
	return p.publish(TopicEventCreated, event.ID, event)
}

// PublishEventUpdated streams the event update to Kafka
func (p *Producer) PublishEventUpdated(event models.Event) error {
	return p.publish(TopicEventUpdated, event.ID, event)
}

// PublishBookingCreated streams the booking creation to Kafka
func (p *Producer) PublishBookingCreated(booking models.Booking) error {
	return p.publish(TopicBookingCreated, booking.ID, booking)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
