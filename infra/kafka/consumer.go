package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"freyr/domain/escrow"
)

// Consumer tails the event topic. Used by the watch tool; the engine
// itself never consumes its own events.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: group,
		}),
	}
}

// Next blocks until the next event or ctx cancellation.
func (c *Consumer) Next(ctx context.Context) (escrow.Event, error) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return escrow.Event{}, err
	}

	var ev escrow.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return escrow.Event{}, err
	}
	return ev, nil
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
