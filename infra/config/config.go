// Package config loads engine settings from an optional YAML file,
// with environment overrides on top (a local .env file is honored).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GRPCAddr string `yaml:"grpc_addr"`

	Kafka struct {
		Brokers           []string      `yaml:"brokers"`
		Topic             string        `yaml:"topic"`
		BroadcastInterval time.Duration `yaml:"broadcast_interval"`
	} `yaml:"kafka"`

	Journal struct {
		Dir         string `yaml:"dir"`
		SegmentSize int64  `yaml:"segment_size"`
	} `yaml:"journal"`

	OutboxDir string `yaml:"outbox_dir"`

	Snapshot struct {
		Dir      string        `yaml:"dir"`
		Interval time.Duration `yaml:"interval"`
	} `yaml:"snapshot"`

	// Vault is the engine's escrow account on the asset ledger.
	Vault string `yaml:"vault"`

	// Seed balances for the in-process asset ledger.
	Balances []SeedBalance `yaml:"balances"`
}

type SeedBalance struct {
	Account string `yaml:"account"`
	Asset   string `yaml:"asset"`
	Amount  int64  `yaml:"amount"`
}

func Default() Config {
	var c Config
	c.GRPCAddr = ":50051"
	c.Kafka.Brokers = []string{"localhost:9092"}
	c.Kafka.Topic = "freyr.events"
	c.Kafka.BroadcastInterval = 250 * time.Millisecond
	c.Journal.Dir = "./data/journal"
	c.Journal.SegmentSize = 2 * 1024 * 1024
	c.OutboxDir = "./data/outbox"
	c.Snapshot.Dir = "./data/snapshot"
	c.Snapshot.Interval = 30 * time.Second
	c.Vault = "escrow-vault"
	return c
}

// Load reads path (if non-empty) over the defaults, then applies env
// overrides. A .env file in the working directory is loaded first.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return c, errors.Wrap(err, "parse config")
		}
	}

	if v := os.Getenv("FREYR_GRPC_ADDR"); v != "" {
		c.GRPCAddr = v
	}
	if v := os.Getenv("FREYR_KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("FREYR_KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("FREYR_VAULT"); v != "" {
		c.Vault = v
	}

	return c, nil
}
