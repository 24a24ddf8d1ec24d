package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"placement-hub/internal/config"
	"placement-hub/internal/domain/application"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConnected = errors.New("rabbitmq not connected")

// RabbitMQ publishes application events to a durable queue. A nil channel
// means messaging is disabled and Publish returns ErrNotConnected.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *log.Logger

	mu sync.Mutex
}

func NewRabbitMQ(cfg config.MessagingConfig, logger *log.Logger) (*RabbitMQ, error) {
	if cfg.RabbitMQURL == "" {
		return nil, errors.New("empty rabbitmq url")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	if logger != nil {
		logger.Printf("[Messaging] connected queue=%s", q.Name)
	}
	return &RabbitMQ{conn: conn, channel: ch, queue: q.Name, logger: logger}, nil
}

// Publish sends evt through the default exchange with the queue name as
// routing key. The event type travels in the message Type property.
func (r *RabbitMQ) Publish(ctx context.Context, evt application.Event) error {
	if r == nil || r.channel == nil {
		return ErrNotConnected
	}

	msg, err := newPublishing(evt)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// amqp channels are not safe for concurrent publishes.
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.channel.PublishWithContext(pubCtx, "", r.queue, false, false, msg)
}

func newPublishing(evt application.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         evt.Type,
		Timestamp:    evt.Timestamp,
		Body:         body,
	}, nil
}

func (r *RabbitMQ) Close() error {
	if r == nil {
		return nil
	}
	var firstErr error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
