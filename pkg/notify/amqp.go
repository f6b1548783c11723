package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publishChannel is the part of *amqp.Channel the publisher uses
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes booking events as JSON to a topic exchange,
// routed by event type. A connection the broker closed is dialed again on
// the next publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       publishChannel
	exchange string
	dial     func() (*amqp.Connection, publishChannel, error)
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, ch, err := dialExchange(url, exchange)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		dial: func() (*amqp.Connection, publishChannel, error) {
			return dialExchange(url, exchange)
		},
	}, nil
}

func dialExchange(url, exchange string) (*amqp.Connection, publishChannel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, ch, nil
}

// Name implements Notifier
func (p *AMQPPublisher) Name() string {
	return "amqp"
}

// Notify publishes the event with its type as routing key. A publish on a
// closed channel is retried once on a fresh connection.
func (p *AMQPPublisher) Notify(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         body,
	}

	ch, err := p.channel()
	if err == nil {
		err = ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg)
		if errors.Is(err, amqp.ErrClosed) {
			p.drop(ch)
			if ch, err = p.channel(); err == nil {
				err = ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg)
			}
		}
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// channel returns the open channel, dialing the broker if it was dropped
func (p *AMQPPublisher) channel() (publishChannel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		return p.ch, nil
	}
	if p.dial == nil {
		return nil, amqp.ErrClosed
	}
	conn, ch, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

// drop releases ch unless another publish already replaced it
func (p *AMQPPublisher) drop(ch publishChannel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != ch {
		return
	}
	_ = p.ch.Close()
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// Close closes the channel and connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
