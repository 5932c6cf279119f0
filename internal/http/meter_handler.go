package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"smartlandlord/internal/service"
)

// MeterHandler 抄表记录
type MeterHandler struct {
	meters *service.MeterService
	logger *zap.Logger
}

func NewMeterHandler(meters *service.MeterService, logger *zap.Logger) *MeterHandler {
	return &MeterHandler{meters: meters, logger: logger}
}

func (h *MeterHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.meters.List()))
	case http.MethodPost:
		var req service.CreateMeterReadingRequest
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		created, err := h.meters.Create(r.Context(), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item 抄表记录不可修改，只有 DELETE
func (h *MeterHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTail(r.URL.Path, "/api/v1/meters/")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.meters.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
}
