package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	domain_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/domain/transfer"
	impl_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/recipient"
	impl_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/impl/usecase/transfer"
)

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func successResponse[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

func errorResponse(message string, errs ...string) Response[struct{}] {
	return Response[struct{}]{Success: false, Message: message, Errors: errs}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain_transfer.ErrIllegalAmount),
		errors.Is(err, domain_transfer.ErrInvalidFee),
		errors.Is(err, domain_transfer.ErrInvalidRecipient),
		errors.Is(err, domain_transfer.ErrInvalidClientID),
		errors.Is(err, impl_transfer.ErrInvalidPagination),
		errors.Is(err, impl_transfer.ErrInvalidInput),
		errors.Is(err, impl_recipient.ErrInvalidPagination):
		return http.StatusBadRequest
	case errors.Is(err, domain_transfer.ErrRecipientNotFound),
		errors.Is(err, domain_transfer.ErrWalletNotFound),
		errors.Is(err, domain_transfer.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain_transfer.ErrOwnershipViolation),
		errors.Is(err, domain_transfer.ErrUnauthorizedAccess):
		return http.StatusForbidden
	case errors.Is(err, domain_transfer.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain_transfer.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
