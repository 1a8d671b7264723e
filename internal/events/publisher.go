package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mwhite7112/edulookup/internal/service"
)

const (
	ExchangeName = "edulookup.topic"
	RoutingKey   = "lookup.completed"
)

// Channel is the subset of *amqp.Channel used to publish.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// LookupCompletedPublisher publishes lookup.completed events.
type LookupCompletedPublisher struct {
	conn        *amqp.Connection
	openChannel func() (Channel, error)
}

type lookupCompletedEvent struct {
	Timestamp   string    `json:"timestamp"`
	LookupID    uuid.UUID `json:"lookup_id"`
	Provider    string    `json:"provider"`
	Query       string    `json:"query"`
	Collection  string    `json:"collection"`
	Outcome     string    `json:"outcome"`
	ResultCount int       `json:"result_count"`
	DurationMs  int64     `json:"duration_ms"`
}

// NewLookupCompletedPublisher creates a RabbitMQ publisher and ensures the
// topic exchange exists.
func NewLookupCompletedPublisher(rabbitmqURL string) (*LookupCompletedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", ExchangeName, err)
	}

	p := &LookupCompletedPublisher{conn: conn}
	p.openChannel = func() (Channel, error) { return conn.Channel() }
	return p, nil
}

// NewPublisherWithChannel builds a publisher over an existing channel
// factory. The caller owns whatever connection backs it.
func NewPublisherWithChannel(open func() (Channel, error)) *LookupCompletedPublisher {
	return &LookupCompletedPublisher{openChannel: open}
}

// PublishLookupCompleted publishes ev. It satisfies service.LookupPublisher.
func (p *LookupCompletedPublisher) PublishLookupCompleted(ctx context.Context, ev service.LookupEvent) error {
	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(newLookupCompletedEvent(ev))
	if err != nil {
		return fmt.Errorf("marshal lookup.completed event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish lookup.completed: %w", err)
	}

	return nil
}

func newLookupCompletedEvent(ev service.LookupEvent) lookupCompletedEvent {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	return lookupCompletedEvent{
		Timestamp:   at.UTC().Format(time.RFC3339),
		LookupID:    ev.ID,
		Provider:    ev.Provider,
		Query:       ev.Query,
		Collection:  ev.Collection,
		Outcome:     string(ev.Outcome),
		ResultCount: ev.ResultCount,
		DurationMs:  ev.Duration.Milliseconds(),
	}
}

// Close closes the RabbitMQ connection.
func (p *LookupCompletedPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
