package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/service"
)

// PaymentHandler 款项与催缴文案
type PaymentHandler struct {
	payments  *service.PaymentService
	contracts *service.ContractService
	logger    *zap.Logger
}

func NewPaymentHandler(payments *service.PaymentService, contracts *service.ContractService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, contracts: contracts, logger: logger}
}

func (h *PaymentHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.payments.List()))
	case http.MethodPost:
		var p domain.PaymentRecord
		if err := readBodyJSON(r, 1<<20, &p); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		created, err := h.payments.Create(r.Context(), p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item /api/v1/payments/{id}[ /mark-paid | /reminder ]
func (h *PaymentHandler) Item(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/v1/payments/")
	parts := strings.Split(tail, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.item(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "mark-paid":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		got, err := h.payments.MarkPaid(r.Context(), parts[0])
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	case len(parts) == 2 && parts[1] == "reminder":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.reminder(w, parts[0])
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *PaymentHandler) item(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var req service.UpdatePaymentRequest
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		got, err := h.payments.Update(r.Context(), id, req)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	case http.MethodDelete:
		if err := h.payments.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *PaymentHandler) reminder(w http.ResponseWriter, id string) {
	p, err := h.payments.Get(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	days := h.payments.DaysOverdue(p)
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"paymentId":   id,
		"daysOverdue": days,
		"text":        h.contracts.RenderPaymentReminder(p, days),
	}))
}
