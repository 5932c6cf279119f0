package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"smartlandlord/internal/service"
)

// FilterHandler 滤芯更换排程
type FilterHandler struct {
	filters *service.FilterService
	logger  *zap.Logger
}

func NewFilterHandler(filters *service.FilterService, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{filters: filters, logger: logger}
}

func (h *FilterHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, Ok(h.filters.List()))
}

// Item /api/v1/filters/{id}/reschedule 与 /api/v1/filters/{id}/mark-replaced
func (h *FilterHandler) Item(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/v1/filters/")
	parts := strings.Split(tail, "/")
	if len(parts) != 2 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	switch parts[1] {
	case "reschedule":
		var req struct {
			LastReplaced string `json:"lastReplaced"`
		}
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		got, err := h.filters.Reschedule(r.Context(), parts[0], req.LastReplaced)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	case "mark-replaced":
		got, err := h.filters.MarkReplaced(r.Context(), parts[0])
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(got))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
