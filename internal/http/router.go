package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router 标准库 http.ServeMux，不引第三方路由
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// pathTail 取 prefix 之后的路径段；多余的斜杠视为无效
func pathTail(path, prefix string) (string, bool) {
	tail := strings.TrimPrefix(path, prefix)
	if tail == "" || strings.Contains(tail, "/") {
		return "", false
	}
	return tail, true
}

// RegisterRoutes 挂载全部业务路由
func (r *Router) RegisterRoutes(
	tenants *TenantHandler,
	payments *PaymentHandler,
	tickets *MaintenanceHandler,
	filters *FilterHandler,
	expenses *ExpenseHandler,
	meters *MeterHandler,
	report *ReportHandler,
	auth *AuthHandler,
	export *ExportHandler,
) {
	r.Handle("/api/v1/tenants", tenants.Collection)
	r.Handle("/api/v1/tenants/", tenants.Item)

	r.Handle("/api/v1/payments", payments.Collection)
	r.Handle("/api/v1/payments/", payments.Item)

	r.Handle("/api/v1/tickets", tickets.Collection)
	r.Handle("/api/v1/tickets/batch-status", tickets.BatchStatus)
	r.Handle("/api/v1/tickets/", tickets.Item)

	r.Handle("/api/v1/filters", filters.Collection)
	r.Handle("/api/v1/filters/", filters.Item)

	r.Handle("/api/v1/expenses", expenses.Collection)
	r.Handle("/api/v1/expenses/", expenses.Item)

	r.Handle("/api/v1/meters", meters.Collection)
	r.Handle("/api/v1/meters/", meters.Item)

	r.Handle("/api/v1/report", report.Yearly)

	r.Handle("/api/v1/auth/login", auth.Login)

	r.Handle("/api/v1/export/", export.Export)

	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]any{"status": "ok"}))
	})
}
