// Package kafka relays outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"time"

	"packflow/internal/adapters/out/relay"
	"packflow/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher writes each message synchronously, keyed by aggregate id so that
// events of one order stay ordered within a partition.
type Publisher struct {
	w *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

// Publish returns only after the brokers acknowledged the write.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	m, err := message(msg)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, m)
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

func message(msg ports.OutboxMessage) (kafka.Message, error) {
	body, err := relay.Marshal(msg)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(msg.AggregateID.String()),
		Value: body,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-name", Value: []byte(msg.Name)},
			{Key: "event-id", Value: []byte(msg.ID.String())},
			{Key: "content-type", Value: []byte(relay.ContentType)},
		},
	}, nil
}
