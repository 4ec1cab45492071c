// Package rabbitmq relays outbox messages to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"time"

	"packflow/internal/adapters/out/relay"
	"packflow/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("publish NACK from broker")

// Publisher publishes with publisher confirms. Routing key is the event name,
// so consumers bind with patterns such as "order.*".
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// Dial connects to url, declares a durable topic exchange and enables confirms.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends msg persistently and waits for the broker's ack of that
// delivery tag. A confirmation arriving after ctx is done is dropped with it.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	body, err := relay.Marshal(msg)
	if err != nil {
		return err
	}

	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, msg.Name, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  relay.ContentType,
		MessageId:    msg.ID.String(),
		Type:         msg.Name,
		Timestamp:    time.Now(),
		Headers:      amqp.Table{"aggregate-id": msg.AggregateID.String()},
		Body:         body,
	})
	if err != nil {
		return err
	}

	acked, err := dc.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return amqp.ErrClosed
	}
	return nil
}

func (p *Publisher) Close() error {
	return errors.Join(p.ch.Close(), p.conn.Close())
}
