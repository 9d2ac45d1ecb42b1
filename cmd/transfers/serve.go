package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/external/paymentclient"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/external/walletclient"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/platform"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/rest"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/config"
	impl_saga "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/saga"
	impl_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/recipient"
	impl_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/transfer"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_external "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const producerName = "transfers-service"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the saga dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(os.Stdout, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("close store", err, nil)
		}
	}()

	b, closeBus, err := openBus(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBus(); err != nil {
			logger.Error("close bus", err, nil)
		}
	}()

	clock := platform.SystemClock{}
	ids := platform.UUIDGenerator{}
	balances := walletclient.New(cfg.WalletBaseURL, cfg.HTTPClientTimeout)
	rail := paymentclient.New(cfg.PaymentBaseURL, cfg.HTTPClientTimeout)

	pubCfg := impl_saga.PublishConfig{Topic: cfg.BusTopic, Producer: producerName}
	source := port_external.PaymentSource{
		Name: cfg.SourceName,
		Account: port_external.BankAccount{
			AccountNumber: cfg.SourceAccount,
			RoutingNumber: cfg.SourceRouting,
			Currency:      cfg.SourceCurrency,
		},
	}

	waiter := impl_saga.NewWalletOutcomeWaiter(st.ledger, cfg.WalletPollInterval, cfg.WalletWaitTimeout)
	wallet := impl_saga.NewWalletGateway(b, ids, pubCfg, balances)
	payment := impl_saga.NewPaymentGateway(b, ids, pubCfg, rail, waiter, source)
	chargeback := impl_saga.NewChargebackGateway(b, ids, pubCfg, st.ledger, balances)
	dispatcher := impl_saga.NewDispatcher(st.ledger, wallet, payment, chargeback, clock)

	handlers := &rest.Handlers{
		Initiate: impl_transfer.NewInitiateTransferUsecaseImpl(
			st.recipients, balances, st.ledger, wallet, payment, chargeback, clock, ids,
		),
		GetTransaction:   impl_transfer.NewGetTransactionUsecaseImpl(st.ledger),
		ListTransactions: impl_transfer.NewListTransactionsUsecaseImpl(st.ledger),
		CreateRecipient:  impl_recipient.NewCreateRecipientUsecaseImpl(st.recipients, clock, ids, cfg.TransferFee),
		GetRecipient:     impl_recipient.NewGetRecipientUsecaseImpl(st.recipients),
		ListRecipients:   impl_recipient.NewListRecipientsUsecaseImpl(st.recipients),
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: rest.NewRouter(handlers, cfg.HTTPRequestTimeout),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("saga dispatcher consuming", logger.Fields{
			"topic":      cfg.BusTopic,
			"partitions": cfg.BusPartitions,
			"backend":    cfg.BusBackend,
		})
		if err := b.Subscribe(gctx, cfg.BusTopic, dispatcher.Handle); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	logger.Info("draining in-flight saga work", nil)
	dispatcher.Wait()

	return err
}
