package impl_saga

import (
	"encoding/json"
	"errors"
	"fmt"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

const SchemaVersion = 1

var ErrUnknownCommand = errors.New("saga: unknown command kind")

type envelopeMeta struct {
	SchemaVersion int    `json:"schema_version"`
	MessageID     string `json:"message_id"`
	EventType     string `json:"event_type"`
	Producer      string `json:"producer"`
	CorrelationID string `json:"correlation_id,omitempty"`
	TransactionID string `json:"transaction_id"`
}

type envelope struct {
	Meta envelopeMeta    `json:"meta"`
	Data json.RawMessage `json:"data"`
}

type withdrawData struct {
	TransactionID string          `json:"transaction_id"`
	OwnerClientID int64           `json:"owner_client_id"`
	Amount        decimal.Decimal `json:"amount"`
}

type paymentData struct {
	TransactionID          string          `json:"transaction_id"`
	OwnerClientID          int64           `json:"owner_client_id"`
	RecipientID            string          `json:"recipient_id"`
	RecipientName          string          `json:"recipient_name"`
	RoutingNumber          string          `json:"routing_number"`
	NationalIdentification string          `json:"national_identification"`
	AccountNumber          string          `json:"account_number"`
	Amount                 decimal.Decimal `json:"amount"`
}

type chargebackData struct {
	TransactionID string `json:"transaction_id"`
}

// EncodeCommand renders cmd as a versioned JSON envelope whose event_type is
// the command kind.
func EncodeCommand(cmd domain_transfer.Command, messageID, producer string) ([]byte, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var data any
	switch cmd.Kind {
	case domain_transfer.KindWalletWithdraw:
		w := cmd.Withdraw
		data = withdrawData{TransactionID: w.TransactionID, OwnerClientID: w.OwnerClientID, Amount: w.Amount}
	case domain_transfer.KindPaymentTransfer:
		p := cmd.Payment
		data = paymentData{
			TransactionID:          p.TransactionID,
			OwnerClientID:          p.OwnerClientID,
			RecipientID:            p.RecipientID,
			RecipientName:          p.RecipientName,
			RoutingNumber:          p.RoutingNumber,
			NationalIdentification: p.NationalIdentification,
			AccountNumber:          p.AccountNumber,
			Amount:                 p.Amount,
		}
	case domain_transfer.KindChargebackExecute:
		data = chargebackData{TransactionID: cmd.Chargeback.TransactionID}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{
		Meta: envelopeMeta{
			SchemaVersion: SchemaVersion,
			MessageID:     messageID,
			EventType:     string(cmd.Kind),
			Producer:      producer,
			CorrelationID: cmd.CorrelationID,
			TransactionID: cmd.TransactionID,
		},
		Data: raw,
	})
}

func DecodeCommand(payload []byte) (domain_transfer.Command, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return domain_transfer.Command{}, fmt.Errorf("decode envelope: %w", err)
	}

	cmd := domain_transfer.Command{
		Kind:          domain_transfer.CommandKind(env.Meta.EventType),
		TransactionID: env.Meta.TransactionID,
		CorrelationID: env.Meta.CorrelationID,
	}

	switch cmd.Kind {
	case domain_transfer.KindWalletWithdraw:
		var d withdrawData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return domain_transfer.Command{}, fmt.Errorf("decode %s: %w", cmd.Kind, err)
		}
		cmd.Withdraw = &domain_transfer.WalletWithdrawCommand{
			TransactionID: d.TransactionID,
			OwnerClientID: d.OwnerClientID,
			Amount:        d.Amount,
		}
	case domain_transfer.KindPaymentTransfer:
		var d paymentData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return domain_transfer.Command{}, fmt.Errorf("decode %s: %w", cmd.Kind, err)
		}
		cmd.Payment = &domain_transfer.PaymentTransferCommand{
			TransactionID:          d.TransactionID,
			OwnerClientID:          d.OwnerClientID,
			RecipientID:            d.RecipientID,
			RecipientName:          d.RecipientName,
			RoutingNumber:          d.RoutingNumber,
			NationalIdentification: d.NationalIdentification,
			AccountNumber:          d.AccountNumber,
			Amount:                 d.Amount,
		}
	case domain_transfer.KindChargebackExecute:
		var d chargebackData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return domain_transfer.Command{}, fmt.Errorf("decode %s: %w", cmd.Kind, err)
		}
		cmd.Chargeback = &domain_transfer.ChargebackCommand{TransactionID: d.TransactionID}
	default:
		return cmd, fmt.Errorf("%w: %q", ErrUnknownCommand, env.Meta.EventType)
	}

	if err := cmd.Validate(); err != nil {
		return domain_transfer.Command{}, err
	}

	return cmd, nil
}
