package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/service"
)

// ExpenseHandler 房东支出
type ExpenseHandler struct {
	expenses *service.ExpenseService
	logger   *zap.Logger
}

func NewExpenseHandler(expenses *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, logger: logger}
}

func (h *ExpenseHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.expenses.List()))
	case http.MethodPost:
		var e domain.ExpenseRecord
		if err := readBodyJSON(r, 1<<20, &e); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
			return
		}
		created, err := h.expenses.Create(r.Context(), e)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item 支出不可修改，只有 DELETE
func (h *ExpenseHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTail(r.URL.Path, "/api/v1/expenses/")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.expenses.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
}
