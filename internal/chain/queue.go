package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue publishes stage messages onto the durable work queue.
type Queue interface {
	PublishStage(ctx context.Context, msg StageMessage) error
}

const (
	DefaultExchange   = "papervault.pipeline"
	DefaultRoutingKey = "pipeline.stage"
	DefaultQueueName  = "pipeline.stages"
)

// RabbitQueue is the amqp-backed publisher side.
type RabbitQueue struct {
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func NewRabbitQueue(conn *amqp.Connection, exchange, routingKey string) (*RabbitQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"direct",
		true, // durable
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &RabbitQueue{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (q *RabbitQueue) PublishStage(ctx context.Context, msg StageMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode stage message: %w", err)
	}
	if err := q.channel.PublishWithContext(ctx,
		q.exchange,
		q.routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("publish stage %s of chain %s: %w", msg.Stage, msg.ChainID, err)
	}
	return nil
}

// ErrUnprocessable marks a delivery that can never succeed, no matter how
// often it is redelivered. The consumer drops these instead of requeueing.
var ErrUnprocessable = errors.New("unprocessable stage message")

// StageHandler processes one delivered stage message. A nil return acks
// the delivery; the handler owns stage retries by republishing. A returned
// error puts the delivery back on the queue so a live chain survives
// worker shutdown and broker hiccups, unless it wraps ErrUnprocessable.
type StageHandler func(ctx context.Context, msg StageMessage) error

// shouldRequeue decides what happens to a delivery whose handler failed.
// Handler errors are infrastructure trouble (shutdown mid-backoff, a
// failed republish) until proven otherwise; only messages tagged as
// unprocessable are dropped.
func shouldRequeue(err error) bool {
	return !errors.Is(err, ErrUnprocessable)
}

// StageConsumer is the worker side of the queue.
type StageConsumer struct {
	channel *amqp.Channel
	queue   string
	handler StageHandler
	logger  *slog.Logger
}

func NewStageConsumer(conn *amqp.Connection, exchange, routingKey, queue string, handler StageHandler, logger *slog.Logger) (*StageConsumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true, // durable
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	if err := ch.QueueBind(queue, routingKey, exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue %q: %w", queue, err)
	}

	// one stage at a time per worker; parallelism comes from the pool
	if err := ch.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}

	return &StageConsumer{
		channel: ch,
		queue:   queue,
		handler: handler,
		logger:  logger,
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes.
func (c *StageConsumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		c.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stage consumer shutting down")
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				c.logger.Warn("queue channel closed")
				return nil
			}

			var msg StageMessage
			if err := json.Unmarshal(delivery.Body, &msg); err != nil {
				c.logger.Error("malformed stage message", "error", err)
				_ = delivery.Nack(false, false)
				continue
			}

			if err := c.handler(ctx, msg); err != nil {
				if shouldRequeue(err) {
					c.logger.Warn("stage message requeued",
						"chain_id", msg.ChainID, "stage", msg.Stage, "error", err)
					_ = delivery.Nack(false, true)
					continue
				}
				c.logger.Error("stage message dropped",
					"chain_id", msg.ChainID, "stage", msg.Stage, "error", err)
				_ = delivery.Nack(false, false)
				continue
			}
			_ = delivery.Ack(false)
		}
	}
}
