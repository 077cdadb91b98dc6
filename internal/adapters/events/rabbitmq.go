// internal/adapters/events/rabbitmq.go
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// RoutingKeyMovementRecorded is the routing key for committed movements.
const RoutingKeyMovementRecorded = "movement.recorded"

// channel is the slice of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc opens a connection and a channel on it.
type dialFunc func(url string) (channel, func() error, error)

func dialAMQP(url string) (channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("channel open failed: %w", err)
	}
	return ch, conn.Close, nil
}

// RabbitPublisher publishes movement events to a durable topic exchange. The
// connection is opened lazily and reopened after a failed publish.
type RabbitPublisher struct {
	url      string
	exchange string
	dial     dialFunc
	logger   *slog.Logger

	mu        sync.Mutex
	ch        channel
	closeConn func() error
}

var _ ports.MovementPublisher = (*RabbitPublisher)(nil)

// NewRabbitPublisher creates a publisher for exchange at url
func NewRabbitPublisher(url, exchange string, logger *slog.Logger) *RabbitPublisher {
	return newRabbitPublisher(url, exchange, dialAMQP, logger)
}

func newRabbitPublisher(url, exchange string, dial dialFunc, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		url:      url,
		exchange: exchange,
		dial:     dial,
		logger:   logger.With(slog.String("component", "rabbitmq")),
	}
}

// movementMessage is the wire shape of a movement.recorded event.
type movementMessage struct {
	MovementID      string    `json:"movement_id"`
	ItemID          string    `json:"item_id"`
	ItemName        string    `json:"item_name"`
	Action          string    `json:"action"`
	FromContainerID *string   `json:"from_container_id,omitempty"`
	ToContainerID   *string   `json:"to_container_id,omitempty"`
	ActorID         *string   `json:"actor_id,omitempty"`
	Note            string    `json:"note,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func newMovementMessage(ev domain.MovementEvent) movementMessage {
	m := ev.Movement
	msg := movementMessage{
		MovementID: m.ID.String(),
		ItemID:     m.ItemID.String(),
		ItemName:   ev.ItemName,
		Action:     string(m.Action),
		Note:       m.Note,
		OccurredAt: m.CreatedAt.UTC(),
	}
	if m.FromContainerID != nil {
		s := m.FromContainerID.String()
		msg.FromContainerID = &s
	}
	if m.ToContainerID != nil {
		s := m.ToContainerID.String()
		msg.ToContainerID = &s
	}
	if m.ActorID != nil {
		s := m.ActorID.String()
		msg.ActorID = &s
	}
	return msg
}

// PublishMovement sends one persistent JSON message
func (p *RabbitPublisher) PublishMovement(ctx context.Context, event domain.MovementEvent) error {
	body, err := json.Marshal(newMovementMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal movement event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channelLocked()
	if err != nil {
		p.logger.WarnContext(ctx, "rabbitmq unavailable", slog.String("error", err.Error()))
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, RoutingKeyMovementRecorded, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Movement.ID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         RoutingKeyMovementRecorded,
		Body:         body,
	})
	if err != nil {
		p.resetLocked()
		p.logger.WarnContext(ctx, "failed to publish movement",
			slog.String("movement_id", event.Movement.ID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("publish failed: %w", err)
	}

	p.logger.DebugContext(ctx, "movement published",
		slog.String("movement_id", event.Movement.ID.String()),
		slog.String("action", string(event.Movement.Action)))
	return nil
}

func (p *RabbitPublisher) channelLocked() (channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}

	ch, closeConn, err := p.dial(p.url)
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		if closeConn != nil {
			_ = closeConn()
		}
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}

	p.ch = ch
	p.closeConn = closeConn
	return ch, nil
}

func (p *RabbitPublisher) resetLocked() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.closeConn != nil {
		errs = append(errs, p.closeConn())
	}
	p.ch = nil
	p.closeConn = nil
	return errors.Join(errs...)
}

// Close releases the channel and connection
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resetLocked()
}

// NoopPublisher drops events. Used when RabbitMQ is disabled.
type NoopPublisher struct{}

var _ ports.MovementPublisher = NoopPublisher{}

// PublishMovement does nothing
func (NoopPublisher) PublishMovement(context.Context, domain.MovementEvent) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
