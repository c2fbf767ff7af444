// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// RoutingAnalysisCompleted is the routing key for finished analyses
const RoutingAnalysisCompleted = "analysis.completed"

// AnalysisCompleted is emitted after every successful gap analysis
type AnalysisCompleted struct {
	AnalysisID     string    `json:"analysisId,omitempty"`
	UserID         string    `json:"userId,omitempty"`
	Domain         string    `json:"domain"`
	ReadinessScore int       `json:"readinessScore"`
	MatchedCount   int       `json:"matchedCount"`
	MissingCount   int       `json:"missingCount"`
	JobCount       int       `json:"jobCount"`
	UsedFallback   bool      `json:"usedFallback"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Publisher sends events
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
	Close() error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	return nil
}

// Close does nothing
func (NoopPublisher) Close() error { return nil }

// AMQPPublisher publishes JSON events to a topic exchange
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPPublisher dials RabbitMQ and declares a durable topic exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Printf("[Events] Publishing to exchange %s", exchange)
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends event as a persistent JSON message
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := newMessage(event, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Publish(p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

// Close closes the channel and connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to close rabbitmq channel: %w", err)
	}
	return p.conn.Close()
}

func newMessage(event interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}, nil
}
