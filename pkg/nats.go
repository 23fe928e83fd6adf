// Package pkg holds the NATS adapters behind the apt events interfaces: the
// backend publishes through NATSPublisher, the order feed consumes through
// NATSSubscriber.
package pkg

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt/events"
	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes storefront events. One publisher per process; the
// backend closes it through a lifecycle hook on shutdown.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	return p.conn.Publish(topic, msg)
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

// NATSSubscriber consumes storefront events. Subscriptions live until the
// subscriber is closed.
type NATSSubscriber struct {
	conn *nats.Conn
}

func NewNATSSubscriber(url string) (*NATSSubscriber, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to NATS: %w", err)
	}
	return &NATSSubscriber{conn: conn}, nil
}

func (s *NATSSubscriber) Subscribe(ctx context.Context, topic string, handler events.HandlerFunc) error {
	_, err := s.conn.Subscribe(topic, func(msg *nats.Msg) {
		_ = handler(ctx, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("cannot subscribe to %s: %w", topic, err)
	}
	return nil
}

// SubscribeQueue distributes messages across subscribers sharing a queue
// name, so several feed instances split the stream instead of each seeing
// every order.
func (s *NATSSubscriber) SubscribeQueue(ctx context.Context, topic, queue string, handler events.HandlerFunc) error {
	_, err := s.conn.QueueSubscribe(topic, queue, func(msg *nats.Msg) {
		_ = handler(ctx, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("cannot subscribe to %s (queue %s): %w", topic, queue, err)
	}
	return nil
}

func (s *NATSSubscriber) Close() error {
	s.conn.Close()
	return nil
}
