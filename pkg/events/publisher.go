package events

import (
	"context"

	"go.uber.org/zap"
)

// Publisher delivers domain events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error
	Close() error
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, exchange string, event *Event, _ Headers) error {
	zap.L().Debug("Event dropped, no broker configured",
		zap.String("exchange", exchange),
		zap.String("routingKey", event.GetRoutingKey()),
	)
	return nil
}

func (NopPublisher) Close() error { return nil }
