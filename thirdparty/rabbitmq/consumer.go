package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/pendaftaran/model"
	"github.com/muhammadheryan/pendaftaran/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EventHandler processes one event. A returned error requeues the message.
type EventHandler func(ctx context.Context, msg model.PendaftaranEventMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler EventHandler
}

func NewConsumer(host string, port int, user, password string, handler EventHandler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// Start consumes the audit queue until ctx is done or the channel closes.
// The returned channel is closed when consumption stops.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		auditQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return done, nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.PendaftaranEventMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] failed to unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, event); err != nil {
		logger.Error("[Consumer] handler failed",
			zap.String("event", string(event.Event)),
			zap.Uint64("id_pendaftaran", event.PendaftaranID),
			zap.String("error", err.Error()),
		)
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
