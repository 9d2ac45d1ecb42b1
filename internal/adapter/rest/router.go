package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handlers, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, successResponse("ok", struct{}{}))
	})

	r.Post("/transfers", h.initiateTransfer)

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.Get("/{id}", h.getTransaction)
	})

	r.Route("/recipients", func(r chi.Router) {
		r.Post("/", h.createRecipient)
		r.Get("/", h.listRecipients)
		r.Get("/{id}", h.getRecipient)
	})

	return r
}
