package queue

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"reservas-backend/utils"
)

// StartConfirmedConsumer consumes reservation.confirmed events and sends the
// confirmation email for each one. It runs a reconnect loop with backoff and
// never returns under normal operation; run it in its own goroutine.
func StartConfirmedConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.WithError(err).Warnf("confirmed-consumer: dial failed, retrying in %s", backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.WithError(err).Warn("confirmed-consumer: consume loop ended, reconnecting")
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(ConfirmedQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(ConfirmedQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleConfirmed(d.Body); err != nil {
			log.WithError(err).Error("confirmed-consumer: handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

func handleConfirmed(body []byte) error {
	var event ReservationConfirmedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if event.CustomerEmail == "" {
		log.WithField("code", event.Code).Warn("confirmed-consumer: no customer email, skipping")
		return nil
	}
	return utils.SendReservationConfirmedEmail(
		event.CustomerEmail, event.CustomerName, event.Code, event.RoomType, event.Amount,
	)
}
