package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"susanalopezstudio/internal/httpx"
)

// There is no payment gateway. Payments are simulated in memory with a
// timer, mirroring the front-end's fake checkout: processing for a short
// delay, then confirmed.

const (
	paymentProcessing = "processing"
	paymentConfirmed  = "confirmed"
)

type payment struct {
	ID        string    `json:"id"`
	Concept   string    `json:"concept"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type paymentLedger struct {
	mu       sync.RWMutex
	delay    time.Duration
	payments map[string]*payment
}

func newPaymentLedger(delay time.Duration) *paymentLedger {
	return &paymentLedger{
		delay:    delay,
		payments: make(map[string]*payment),
	}
}

func (l *paymentLedger) create(concept string, amount float64) payment {
	p := &payment{
		ID:        uuid.NewString(),
		Concept:   concept,
		Amount:    amount,
		Status:    paymentProcessing,
		CreatedAt: time.Now(),
	}
	l.mu.Lock()
	l.payments[p.ID] = p
	l.mu.Unlock()

	time.AfterFunc(l.delay, func() {
		l.mu.Lock()
		p.Status = paymentConfirmed
		l.mu.Unlock()
	})
	return *p
}

func (l *paymentLedger) get(id string) (payment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.payments[id]
	if !ok {
		return payment{}, false
	}
	return *p, true
}

type paymentRequest struct {
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

func (s *Server) handlePaymentSimulate(w http.ResponseWriter, r *http.Request) {
	if !s.flags.System().EnablePayments {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Pagos deshabilitados",
		})
		return
	}

	var req paymentRequest
	if err := readJSONBody(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}
	concept := strings.TrimSpace(req.Concept)
	if concept == "" || req.Amount <= 0 {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Concepto e importe son requeridos",
		})
		return
	}

	p := s.payments.create(concept, req.Amount)
	s.log.Info().Str("payment", p.ID).Float64("amount", p.Amount).Msg("simulated payment created")
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"payment": p,
	})
}

func (s *Server) handlePaymentGet(w http.ResponseWriter, r *http.Request) {
	p, ok := s.payments.get(chi.URLParam(r, "id"))
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Pago no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"payment": p,
	})
}
