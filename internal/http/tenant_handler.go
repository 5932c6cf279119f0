package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/service"
)

// TenantHandler 租客与合约
type TenantHandler struct {
	tenants   *service.TenantService
	contracts *service.ContractService
	logger    *zap.Logger
}

func NewTenantHandler(tenants *service.TenantService, contracts *service.ContractService, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{tenants: tenants, contracts: contracts, logger: logger}
}

type createTenantRequest struct {
	domain.Tenant
	GenRent    bool `json:"genRent"`
	GenDeposit bool `json:"genDeposit"`
}

type createTenantResponse struct {
	Tenant            domain.Tenant          `json:"tenant"`
	GeneratedPayments []domain.PaymentRecord `json:"generatedPayments"`
}

// Collection GET 列表 / POST 新增
func (h *TenantHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.tenants.List()))
	case http.MethodPost:
		var req createTenantRequest
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		tenant, generated, err := h.tenants.Create(r.Context(), req.Tenant,
			service.GenerateOptions{GenRent: req.GenRent, GenDeposit: req.GenDeposit})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(createTenantResponse{Tenant: tenant, GeneratedPayments: generated}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item /api/v1/tenants/{id} 与 /api/v1/tenants/{id}/contract
func (h *TenantHandler) Item(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/v1/tenants/")
	parts := strings.Split(tail, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.item(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "contract":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.contract(w, parts[0])
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *TenantHandler) item(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		t, err := h.tenants.Get(id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(t))
	case http.MethodPut:
		var t domain.Tenant
		if err := readBodyJSON(r, 1<<20, &t); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		updated, err := h.tenants.Update(r.Context(), id, t)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(updated))
	case http.MethodDelete:
		// 不可逆：级联清掉名下款项与报修单
		if err := h.tenants.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *TenantHandler) contract(w http.ResponseWriter, id string) {
	t, err := h.tenants.Get(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"tenantId": id,
		"text":     h.contracts.RenderContract(t.Tenant),
	}))
}
