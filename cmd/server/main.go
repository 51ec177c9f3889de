package main

import (
	"context"
	"flag"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"freyr/api/grpcserver"
	pb "freyr/api/pb"
	"freyr/domain/escrow"
	"freyr/infra/assets"
	"freyr/infra/config"
	"freyr/infra/journal"
	"freyr/infra/outbox"
	"freyr/infra/sequence"
	"freyr/jobs/broadcaster"
	"freyr/service"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	log := logrus.WithField("component", "server")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	// ---------------- Journal ----------------

	jnl, err := journal.Open(journal.Config{
		Dir:         cfg.Journal.Dir,
		SegmentSize: cfg.Journal.SegmentSize,
	})
	if err != nil {
		log.WithError(err).Fatal("journal init failed")
	}
	defer jnl.Close()

	// ---------------- Outbox ----------------

	box, err := outbox.Open(cfg.OutboxDir)
	if err != nil {
		log.WithError(err).Fatal("outbox init failed")
	}
	defer box.Close()

	// ---------------- Sequencers ----------------

	idSeq := sequence.New(0)
	opSeq := sequence.New(0)

	// ---------------- Asset ledger ----------------

	vault := escrow.AccountID(cfg.Vault)
	ledger := assets.NewMemLedger(vault)
	for _, b := range cfg.Balances {
		ledger.Mint(escrow.AccountID(b.Account), escrow.AssetID(b.Asset), b.Amount)
	}

	// ---------------- Restore ----------------

	orders := escrow.NewOrderLedger(idSeq)
	if err := service.Restore(cfg.Snapshot.Dir, cfg.Journal.Dir, orders, idSeq, opSeq); err != nil {
		log.WithError(err).Fatal("restore failed")
	}

	// ---------------- Service ----------------

	svc := service.NewEscrowService(orders, ledger, vault, opSeq, jnl, box)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.Snapshot.Dir, cfg.Snapshot.Interval)

	bc, err := broadcaster.New(box, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.BroadcastInterval)
	if err != nil {
		log.WithError(err).Fatal("broadcaster init failed")
	}
	defer bc.Close()
	go bc.Run(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.WithError(err).Fatal("listen failed")
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEscrowServiceServer(grpcSrv, grpcserver.NewServer(svc))

	log.WithField("addr", cfg.GRPCAddr).Info("freyr engine running")

	if err := grpcSrv.Serve(lis); err != nil {
		log.WithError(err).Fatal("gRPC server exited")
	}
}
