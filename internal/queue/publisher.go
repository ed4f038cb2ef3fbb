package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher публикует события в RabbitMQ. Соединение открывается
// на каждую публикацию: события редкие, держать канал незачем.
type AMQPPublisher struct {
	url   string
	queue string
	log   *slog.Logger
}

func NewAMQPPublisher(url string, logger *slog.Logger) *AMQPPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &AMQPPublisher{url: url, queue: RosterGeneratedQueue, log: logger}
}

// PublishRosterGenerated кладёт событие в durable-очередь с persistent-доставкой.
func (p *AMQPPublisher) PublishRosterGenerated(ctx context.Context, event RosterGeneratedEvent) error {
	pub, err := newPublishing(event)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", "error", err)
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", "error", err)
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", "queue", p.queue, "error", err)
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.Warn("rabbitmq: publish failed", "queue", p.queue, "error", err)
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func newPublishing(event RosterGeneratedEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.RosterID,
		Type:         RosterGeneratedQueue,
		Body:         body,
	}, nil
}
