package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	port_recipient "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/recipient"
	port_transfer "github.com/PedroCamargo-dev/wallet-transfer-saga/internal/ports/usecase/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	HeaderClientID      = "X-Client-Id"
	HeaderCorrelationID = "X-Correlation-Id"

	defaultPageSize = 10
)

var (
	errMissingClientID = errors.New("missing or invalid " + HeaderClientID + " header")
	errInvalidQuery    = errors.New("invalid query parameter")
)

type Handlers struct {
	Initiate         port_transfer.InitiateTransferUseCase
	GetTransaction   port_transfer.GetTransactionUseCase
	ListTransactions port_transfer.ListTransactionsUseCase
	CreateRecipient  port_recipient.CreateRecipientUseCase
	GetRecipient     port_recipient.GetRecipientUseCase
	ListRecipients   port_recipient.ListRecipientsUseCase
}

func clientID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(HeaderClientID)), 10, 64)
	if err != nil || id <= 0 {
		return 0, errMissingClientID
	}
	return id, nil
}

func correlationID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderCorrelationID)); id != "" {
		return id
	}
	return middleware.GetReqID(r.Context())
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQuery
	}
	return v, nil
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, status int, err error, start time.Time) {
	logError(r, err, logger.Fields{"status": status})
	writeJSON(w, status, errorResponse(http.StatusText(status), err.Error()))
	logResponse(r, status, start)
}

func (h *Handlers) initiateTransfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}
	logRequest(r, req)

	out, err := h.Initiate.Execute(r.Context(), port_transfer.InitiateTransferInput{
		RecipientID:        req.RecipientID,
		RequestingClientID: owner,
		Amount:             req.Amount,
		CorrelationID:      correlationID(r),
	})
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse("transfer initiated", transferResponse{
		TransactionID: out.TransactionID,
		Status:        out.Status,
		CreatedAt:     out.CreatedAt,
	}))
	logResponse(r, http.StatusCreated, start)
}

func (h *Handlers) getTransaction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	out, err := h.GetTransaction.Execute(r.Context(), port_transfer.GetTransactionInput{
		TransactionID:      chi.URLParam(r, "id"),
		RequestingClientID: owner,
	})
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	writeJSON(w, http.StatusOK, successResponse("ok", toTransactionResponse(out)))
	logResponse(r, http.StatusOK, start)
}

func (h *Handlers) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	in := port_transfer.ListTransactionsInput{OwnerClientID: owner}
	if in.Page, err = queryInt(r, "page", 0); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}
	if in.PageSize, err = queryInt(r, "page_size", defaultPageSize); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.fail(w, r, http.StatusBadRequest, errInvalidQuery, start)
			return
		}
		in.Date = &date
	}

	out, err := h.ListTransactions.Execute(r.Context(), in)
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	items := make([]transactionResponse, 0, len(out.Items))
	for _, o := range out.Items {
		items = append(items, toTransactionResponse(o))
	}

	writeJSON(w, http.StatusOK, successResponse("ok", pageResponse[transactionResponse]{
		Items:      items,
		Page:       out.Page,
		PageSize:   out.PageSize,
		TotalPages: out.TotalPages,
	}))
	logResponse(r, http.StatusOK, start)
}

func (h *Handlers) createRecipient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	var req recipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}
	logRequest(r, req)

	out, err := h.CreateRecipient.Execute(r.Context(), port_recipient.CreateRecipientInput{
		OwnerClientID:          owner,
		Name:                   req.Name,
		RoutingNumber:          req.RoutingNumber,
		NationalIdentification: req.NationalIdentification,
		AccountNumber:          req.AccountNumber,
	})
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse("recipient created", toRecipientResponse(out)))
	logResponse(r, http.StatusCreated, start)
}

func (h *Handlers) getRecipient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	out, err := h.GetRecipient.Execute(r.Context(), port_recipient.GetRecipientInput{
		RecipientID:        chi.URLParam(r, "id"),
		RequestingClientID: owner,
	})
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	writeJSON(w, http.StatusOK, successResponse("ok", toRecipientResponse(out)))
	logResponse(r, http.StatusOK, start)
}

func (h *Handlers) listRecipients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	owner, err := clientID(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	in := port_recipient.ListRecipientsInput{OwnerClientID: owner}
	if in.Page, err = queryInt(r, "page", 0); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}
	if in.PageSize, err = queryInt(r, "size", defaultPageSize); err != nil {
		h.fail(w, r, http.StatusBadRequest, err, start)
		return
	}

	out, err := h.ListRecipients.Execute(r.Context(), in)
	if err != nil {
		h.fail(w, r, statusFor(err), err, start)
		return
	}

	items := make([]recipientResponse, 0, len(out.Items))
	for _, o := range out.Items {
		items = append(items, toRecipientResponse(o))
	}

	writeJSON(w, http.StatusOK, successResponse("ok", pageResponse[recipientResponse]{
		Items:      items,
		Page:       out.Page,
		PageSize:   out.PageSize,
		TotalPages: out.TotalPages,
	}))
	logResponse(r, http.StatusOK, start)
}
