// Package broadcaster drains the durable outbox into Kafka.
//
// Record state walks NEW → SENT → ACKED. SENT is written before the
// produce, ACKED only after the broker confirms, so a crash between
// the two re-publishes the event on the next pass: at-least-once,
// never silent loss.
package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"freyr/infra/outbox"
)

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *logrus.Entry
}

func New(
	box *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      logrus.WithField("job", "broadcaster"),
	}, nil
}

func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

func (b *Broadcaster) drainOnce() {
	err := b.box.ScanPending(func(seq uint64, rec outbox.Record) error {
		if err := b.box.UpdateState(seq, outbox.StateSent, rec.Retries+1); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(fmt.Sprintf("%020d", seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.WithError(err).WithField("seq", seq).Warn("publish failed, will retry")
			return nil // retry on a later pass
		}

		return b.box.UpdateState(seq, outbox.StateAcked, rec.Retries+1)
	})
	if err != nil {
		b.log.WithError(err).Error("outbox scan failed")
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
