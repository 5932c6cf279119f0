package httpapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/service"
)

// ExportHandler GET /api/v1/export/{family}，返回 xlsx
type ExportHandler struct {
	tenants  *service.TenantService
	payments *service.PaymentService
	tickets  *service.MaintenanceService
	filters  *service.FilterService
	expenses *service.ExpenseService
	meters   *service.MeterService
	logger   *zap.Logger
}

func NewExportHandler(
	tenants *service.TenantService,
	payments *service.PaymentService,
	tickets *service.MaintenanceService,
	filters *service.FilterService,
	expenses *service.ExpenseService,
	meters *service.MeterService,
	logger *zap.Logger,
) *ExportHandler {
	return &ExportHandler{
		tenants:  tenants,
		payments: payments,
		tickets:  tickets,
		filters:  filters,
		expenses: expenses,
		meters:   meters,
		logger:   logger,
	}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	family, ok := pathTail(r.URL.Path, "/api/v1/export/")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var (
		data     []byte
		filename string
		err      error
	)
	switch family {
	case "tenants":
		overviews := h.tenants.List()
		tenants := make([]domain.Tenant, 0, len(overviews))
		for _, o := range overviews {
			tenants = append(tenants, o.Tenant)
		}
		data, err = tenantWorkbook(tenants)
		filename = "Tenant_List.xlsx"
	case "payments":
		data, err = paymentWorkbook(h.payments.List())
		filename = "Rent_Report.xlsx"
	case "expenses":
		data, err = expenseWorkbook(h.expenses.List())
		filename = "Expenses.xlsx"
	case "maintenance":
		data, err = maintenanceWorkbook(h.tickets.List(), h.filters.List())
		filename = "Maintenance_Report.xlsx"
	case "meters":
		data, err = meterWorkbook(h.meters.List())
		filename = "Electricity_Report.xlsx"
	default:
		writeJSON(w, http.StatusNotFound, Fail(fmt.Sprintf("unknown export family %q", family)))
		return
	}
	if err != nil {
		h.logger.Error("export failed", zap.String("family", family), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("export failed"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
