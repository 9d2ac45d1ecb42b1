package domain_transfer

import "errors"

var (
	ErrIllegalAmount      = errors.New("transfer: amount must be present and not negative")
	ErrInvalidFee         = errors.New("transfer: fee must be between 0 and 1")
	ErrInvalidRecipient   = errors.New("transfer: recipient is missing required data")
	ErrInvalidTransaction = errors.New("transfer: transaction is missing required data")
	ErrInvalidClientID    = errors.New("transfer: client_id must be > 0")
	ErrInvalidStatus      = errors.New("transfer: unknown transaction status")
	ErrInvalidTarget      = errors.New("transfer: unknown target system")
	ErrInvalidCommand     = errors.New("transfer: malformed saga command")

	ErrRecipientNotFound   = errors.New("transfer: recipient not found")
	ErrWalletNotFound      = errors.New("transfer: wallet not found")
	ErrTransactionNotFound = errors.New("transfer: transaction not found")

	ErrOwnershipViolation = errors.New("transfer: recipient is not owned by client")
	ErrUnauthorizedAccess = errors.New("transfer: resource does not belong to client")

	ErrInsufficientBalance = errors.New("transfer: insufficient balance")

	ErrTransferFailed = errors.New("transfer: transfer failed")
)
