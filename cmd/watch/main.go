// watch tails the engine's event topic and prints every notification.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"freyr/domain/escrow"
	"freyr/infra/config"
	"freyr/infra/kafka"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	group := flag.String("group", "freyr-watch", "consumer group id")
	flag.Parse()

	log := logrus.WithField("component", "watch")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, *group)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("topic", cfg.Kafka.Topic).Info("watching")

	for {
		ev, err := consumer.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Error("read failed")
			continue
		}

		entry := log.WithFields(logrus.Fields{
			"seq":   ev.Seq,
			"order": ev.OrderID,
		})
		if ev.Type == escrow.EvOrderCreated {
			entry = entry.WithFields(logrus.Fields{
				"maker":       ev.Maker,
				"sell_amount": ev.SellAmount,
			})
		}
		entry.Info(ev.Type)
	}
}
