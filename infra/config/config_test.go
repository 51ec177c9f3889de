package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.GRPCAddr != ":50051" || c.Kafka.Topic != "freyr.events" {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freyr.yaml")
	data := []byte(`
grpc_addr: ":7000"
vault: custody
balances:
  - {account: alice, asset: X, amount: 100}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.GRPCAddr != ":7000" || c.Vault != "custody" {
		t.Errorf("yaml not applied: %+v", c)
	}
	if len(c.Balances) != 1 || c.Balances[0].Amount != 100 {
		t.Errorf("balances not parsed: %+v", c.Balances)
	}
	// Untouched keys keep their defaults.
	if c.Kafka.Topic != "freyr.events" {
		t.Errorf("default lost: %+v", c.Kafka)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	t.Setenv("FREYR_GRPC_ADDR", ":9999")
	t.Setenv("FREYR_KAFKA_BROKERS", "k1:9092,k2:9092")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.GRPCAddr != ":9999" {
		t.Errorf("env override lost: %s", c.GRPCAddr)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("brokers not split: %v", c.Kafka.Brokers)
	}
}
