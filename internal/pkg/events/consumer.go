package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrMalformed marks a delivery that can never be processed and must not be requeued.
var ErrMalformed = errors.New("malformed event")

// HandlerFunc processes one delivery body published under key.
type HandlerFunc func(ctx context.Context, key string, body []byte) error

type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Keys     []string
	Prefetch int
}

type Consumer struct {
	cfg     ConsumerConfig
	handler HandlerFunc
}

func NewConsumer(cfg ConsumerConfig, handler HandlerFunc) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 20
	}
	return &Consumer{cfg: cfg, handler: handler}
}

// Run consumes until ctx is cancelled, reconnecting with backoff.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		conn, err := amqp.Dial(c.cfg.URL)
		if err != nil {
			log.Printf("notifier_dial_failed error=%q retry_in=%s", err.Error(), backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("notifier_consume_ended error=%v; reconnecting", err)
		time.Sleep(2 * time.Second)
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		log.Printf("notifier_qos_failed error=%q", err.Error())
	}
	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	for _, key := range c.cfg.Keys {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for d := range deliveries {
		c.dispatch(ctx, d)
	}
	return errors.New("delivery channel closed")
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	err := c.handler(ctx, d.RoutingKey, d.Body)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, ErrMalformed):
		log.Printf("notifier_event_rejected key=%s error=%q", d.RoutingKey, err.Error())
		_ = d.Nack(false, false)
	default:
		log.Printf("notifier_event_failed key=%s error=%q", d.RoutingKey, err.Error())
		_ = d.Nack(false, true)
	}
}
