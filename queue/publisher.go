package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	CreatedQueueName   = "reservation.created"
	ConfirmedQueueName = "reservation.confirmed"
)

// Publisher writes reservation events to RabbitMQ. A nil *Publisher is a
// valid no-op, so callers never have to check whether the broker is
// configured.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// BrokerURL reads the broker address from the environment; empty means the
// broker is disabled.
func BrokerURL() string {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return url
}

// NewPublisher dials the broker and declares the durable queues.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	for _, name := range []string{CreatedQueueName, ConfirmedQueueName} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) publish(queueName string, payload interface{}) {
	if p == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("failed to marshal event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = p.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		// Event delivery is best-effort; bookings never fail because the
		// broker is down.
		log.WithError(err).WithField("queue", queueName).Error("failed to publish event")
	}
}

func (p *Publisher) ReservationCreated(event ReservationCreatedEvent) {
	p.publish(CreatedQueueName, event)
}

func (p *Publisher) ReservationConfirmed(event ReservationConfirmedEvent) {
	p.publish(ConfirmedQueueName, event)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
