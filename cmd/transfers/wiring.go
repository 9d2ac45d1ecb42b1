package main

import (
	"context"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/messaging/memory"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/messaging/redisstream"
	memstore "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/persistence/memory"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/persistence/postgres"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/config"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging"
	port_persistence "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence"
)

type bus interface {
	messaging.Publisher
	messaging.Subscriber
}

type stores struct {
	ledger     port_persistence.TransactionLedger
	recipients port_persistence.RecipientDirectory
	close      func() error
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.StoreBackend == config.BackendMemory {
		return stores{
			ledger:     memstore.NewLedger(),
			recipients: memstore.NewRecipientDirectory(),
			close:      func() error { return nil },
		}, nil
	}

	sqlDB, gdb, err := postgres.Open(ctx, cfg.DatabaseDSN, postgres.Options{
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return stores{}, err
	}

	return stores{
		ledger:     postgres.NewLedger(gdb),
		recipients: postgres.NewRecipientDirectory(sqlDB, cfg.TransferFee),
		close:      sqlDB.Close,
	}, nil
}

func openBus(ctx context.Context, cfg *config.Config) (bus, func() error, error) {
	if cfg.BusBackend == config.BackendMemory {
		return memory.NewBus(cfg.BusPartitions, 256), func() error { return nil }, nil
	}

	client := redisstream.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	b := redisstream.NewBus(client, redisstream.Options{
		Partitions: cfg.BusPartitions,
		Group:      cfg.BusConsumerGroup,
		Consumer:   cfg.BusConsumerName,
	})
	return b, client.Close, nil
}
