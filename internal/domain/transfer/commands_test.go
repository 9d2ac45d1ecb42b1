package domain_transfer_test

import (
	"testing"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Validate(t *testing.T) {
	r, err := domain_transfer.NewRecipient(recipientParams("0.1"))
	require.NoError(t, err)

	withdraw := domain_transfer.NewWithdrawCommand("tx-1", r, decimal.NewFromInt(100))
	payment := domain_transfer.NewPaymentCommand("tx-1", r, decimal.NewFromInt(90))
	chargeback := domain_transfer.NewChargebackCommand("tx-1")

	assert.NoError(t, withdraw.Validate())
	assert.NoError(t, payment.Validate())
	assert.NoError(t, chargeback.Validate())

	assert.Equal(t, int64(10), withdraw.Withdraw.OwnerClientID)
	assert.Equal(t, "000123", payment.Payment.AccountNumber)

	mismatched := withdraw
	mismatched.Kind = domain_transfer.KindChargebackExecute
	assert.ErrorIs(t, mismatched.Validate(), domain_transfer.ErrInvalidCommand)

	two := payment
	two.Chargeback = &domain_transfer.ChargebackCommand{TransactionID: "tx-1"}
	assert.ErrorIs(t, two.Validate(), domain_transfer.ErrInvalidCommand)

	unknown := domain_transfer.Command{Kind: "ledger.sync", TransactionID: "tx-1", Chargeback: &domain_transfer.ChargebackCommand{TransactionID: "tx-1"}}
	assert.ErrorIs(t, unknown.Validate(), domain_transfer.ErrInvalidCommand)

	empty := domain_transfer.NewChargebackCommand("")
	assert.ErrorIs(t, empty.Validate(), domain_transfer.ErrInvalidCommand)
}

func TestStatus_Parse(t *testing.T) {
	s, err := domain_transfer.ParseStatus(" completed ")
	require.NoError(t, err)
	assert.Equal(t, domain_transfer.StatusCompleted, s)
	assert.True(t, s.IsTerminal())
	assert.False(t, domain_transfer.StatusInProgress.IsTerminal())

	_, err = domain_transfer.ParseStatus("DONE")
	assert.ErrorIs(t, err, domain_transfer.ErrInvalidStatus)

	target, err := domain_transfer.ParseTargetSystem("payment")
	require.NoError(t, err)
	assert.Equal(t, domain_transfer.TargetPayment, target)
}
