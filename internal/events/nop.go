package events

import "context"

// NopPublisher discards every event. It stands in for the Kafka publisher
// when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}
