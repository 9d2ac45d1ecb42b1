// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/persistence TransactionLedger,RecipientDirectory
//go:generate mockgen -destination=mock_messaging.go -package=mocks github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/messaging Publisher
//go:generate mockgen -destination=mock_external.go -package=mocks github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/external BalanceService,PaymentRail
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/gateway/platform Clock,IDGenerator
//go:generate mockgen -destination=mock_saga.go -package=mocks github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/saga WalletGateway,PaymentGateway,ChargebackGateway
