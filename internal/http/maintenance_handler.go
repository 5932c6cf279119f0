package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/service"
)

// MaintenanceHandler 报修单
type MaintenanceHandler struct {
	tickets *service.MaintenanceService
	logger  *zap.Logger
}

func NewMaintenanceHandler(tickets *service.MaintenanceService, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{tickets: tickets, logger: logger}
}

func (h *MaintenanceHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.tickets.List()))
	case http.MethodPost:
		var t domain.MaintenanceTicket
		if err := readBodyJSON(r, 1<<20, &t); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		created, err := h.tickets.Create(r.Context(), t)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type batchStatusRequest struct {
	IDs    []string            `json:"ids"`
	Status domain.TicketStatus `json:"status"`
}

// BatchStatus 批量改状态（列表页勾选操作）
func (h *MaintenanceHandler) BatchStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req batchStatusRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	hit, err := h.tickets.BatchUpdateStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"updated": hit}))
}

// Item /api/v1/tickets/{id}[ /status ]
func (h *MaintenanceHandler) Item(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/v1/tickets/")
	parts := strings.Split(tail, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.item(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "status":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Status domain.TicketStatus `json:"status"`
		}
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		got, err := h.tickets.UpdateStatus(r.Context(), parts[0], req.Status)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *MaintenanceHandler) item(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var t domain.MaintenanceTicket
		if err := readBodyJSON(r, 1<<20, &t); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		got, err := h.tickets.Update(r.Context(), id, t)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	case http.MethodDelete:
		if err := h.tickets.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
