package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"smartlandlord/internal/service"
)

// ReportHandler 营运看板
type ReportHandler struct {
	reports *service.ReportService
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewReportHandler(reports *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger, nowFunc: time.Now}
}

// Yearly GET /api/v1/report?year=2024，缺省当年
func (h *ReportHandler) Yearly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	year := parseInt(r.URL.Query().Get("year"), h.nowFunc().Year())
	writeJSON(w, http.StatusOK, Ok(h.reports.Yearly(year)))
}
