// Package httpapi exposes the ledger over HTTP. Handlers decode JSON,
// call the ledger, persist the full snapshot after every successful
// mutation, and map the error taxonomy to status codes.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/fairshare-dev/fairshare/internal/export"
	"github.com/fairshare-dev/fairshare/internal/ledger"
	"github.com/fairshare-dev/fairshare/internal/log"
	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/report"
	"github.com/fairshare-dev/fairshare/internal/response"
	"github.com/fairshare-dev/fairshare/internal/settle"
	"github.com/fairshare-dev/fairshare/internal/store"
)

// Handler serves the ledger API.
type Handler struct {
	ledger *ledger.Service
	store  store.Store
	logger *log.Logger
}

// NewHandler creates a handler over the given ledger and store.
func NewHandler(svc *ledger.Service, st store.Store, logger *log.Logger) *Handler {
	return &Handler{ledger: svc, store: st, logger: logger}
}

// Router returns the full API router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/participants", h.createParticipant)
		r.Get("/participants", h.listParticipants)
		r.Delete("/participants/{id}", h.deleteParticipant)

		r.Post("/payments", h.createPayment)
		r.Get("/payments", h.listPayments)
		r.Delete("/payments/{id}", h.deletePayment)

		r.Get("/balances", h.getBalances)
		r.Get("/settlements", h.getSettlements)
		r.Get("/summary", h.getSummary)
		r.Get("/export", h.exportCSV)

		r.Delete("/data", h.clearData)
	})
	return r
}

type createParticipantRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createParticipant(w http.ResponseWriter, r *http.Request) {
	var req createParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.ledger.AddParticipant(req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !h.persist(w) {
		return
	}
	response.JSON(w, http.StatusCreated, p)
}

func (h *Handler) listParticipants(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.ledger.Participants())
}

func (h *Handler) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	removed, err := h.ledger.RemoveParticipant(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !removed {
		response.NotFound(w, fmt.Sprintf("participant %d not found", id))
		return
	}
	if !h.persist(w) {
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"removed": true})
}

type createPaymentRequest struct {
	PayerID     int             `json:"payerId"`
	Amount      decimal.Decimal `json:"amount"`
	InvolvedIDs []int           `json:"involvedIds"`
	Purpose     string          `json:"purpose"`
	Category    string          `json:"category"`
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	payment, err := h.ledger.AddPayment(ledger.AddPaymentParams{
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		InvolvedIDs: req.InvolvedIDs,
		Purpose:     req.Purpose,
		Category:    model.Category(req.Category),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !h.persist(w) {
		return
	}
	response.JSON(w, http.StatusCreated, payment)
}

// listPayments honors an optional ?q= free-text filter over purpose and
// category.
func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments := report.Search(h.ledger.Payments(), r.URL.Query().Get("q"))
	response.JSON(w, http.StatusOK, payments)
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	removed, err := h.ledger.RemovePayment(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !removed {
		response.NotFound(w, fmt.Sprintf("payment %d not found", id))
		return
	}
	if !h.persist(w) {
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (h *Handler) getBalances(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.ledger.Balances())
}

func (h *Handler) getSettlements(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, settle.Plan(h.ledger.Balances()))
}

func (h *Handler) getSummary(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, report.Summarize(h.ledger.Payments()))
}

func (h *Handler) exportCSV(w http.ResponseWriter, _ *http.Request) {
	filename := fmt.Sprintf("fairshare_expenses_%s.csv", time.Now().Format(model.DateFormat))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteCSV(w, h.ledger.Payments()); err != nil {
		h.logger.Error("csv export failed", "error", err)
	}
}

func (h *Handler) clearData(w http.ResponseWriter, _ *http.Request) {
	h.ledger.Clear()
	if !h.persist(w) {
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

// persist saves the full snapshot after a mutation. A save failure is
// reported as a 500; the in-memory state has already advanced, matching
// the save-after-mutate contract.
func (h *Handler) persist(w http.ResponseWriter) bool {
	if err := h.store.Save(h.ledger.Snapshot()); err != nil {
		h.logger.Error("snapshot save failed", "error", err)
		response.InternalError(w, "failed to persist ledger state")
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *ledger.ValidationError
	var cerr *ledger.ConflictError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, verr.Error())
	case errors.As(err, &cerr):
		response.Conflict(w, cerr.Error())
	default:
		h.logger.Error("unexpected error", "error", err)
		response.InternalError(w, "internal error")
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func urlID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}
