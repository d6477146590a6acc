// Package messaging provides event publisher implementations. The
// EventBridge publisher under eventbridge/ is the production path; the
// logging publisher here serves development and tests.
package messaging

import (
	"context"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/events"

	"go.uber.org/zap"
)

// LoggingPublisher writes events to the log instead of a broker
type LoggingPublisher struct {
	logger *zap.Logger
}

// NewLoggingPublisher creates a logging publisher
func NewLoggingPublisher(logger *zap.Logger) ports.EventPublisher {
	return &LoggingPublisher{logger: logger}
}

// Publish logs a single event
func (p *LoggingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.logger.Info("Domain event",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
		zap.Time("timestamp", event.GetTimestamp()),
	)
	return nil
}

// PublishBatch logs multiple events
func (p *LoggingPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
