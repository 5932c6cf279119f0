package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smartlandlord/internal/domain"
)

func TestExportPayments(t *testing.T) {
	env := newTestEnv(t)
	env.store.AddPayments(context.Background(), domain.PaymentRecord{
		ID: "p1", TenantName: "王小明", Amount: 15000, DueDate: "2024-01-05",
		Status: domain.PaymentPaid, Type: domain.PaymentRent,
	})

	rec := env.do(t, http.MethodGet, "/api/v1/export/payments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "Rent_Report.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Financials")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"租客姓名", "金額", "到期日", "狀態", "類型"}, rows[0])
	require.Equal(t, "王小明", rows[1][0])
	require.Equal(t, "已繳", rows[1][3], "导出用中文显示值")
	require.Equal(t, "租金", rows[1][4])
}

func TestExportMaintenanceHasTwoSheets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.store.AddTenant(ctx, domain.Tenant{ID: "t1", Name: "王小明"})
	env.store.AddTicket(ctx, domain.MaintenanceTicket{
		ID: "mt1", TenantID: "t1", TenantName: "王小明", Description: "冷氣不冷",
		ReportDate: "2024-03-01", Status: domain.TicketOpen,
		Priority: domain.PriorityHigh, Category: domain.CategoryAppliance,
	})
	env.store.AddFilter(ctx, domain.FilterSchedule{
		ID: "f1", Model: "UF-591", CycleMonths: 6,
		LastReplaced: "2024-01-01", NextDue: "2024-07-01", Status: domain.FilterGood,
	})

	rec := env.do(t, http.MethodGet, "/api/v1/export/maintenance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	repairs, err := f.GetRows("Repairs")
	require.NoError(t, err)
	require.Len(t, repairs, 2)
	require.Equal(t, "處理中", repairs[1][3])
	require.Equal(t, "高", repairs[1][4])

	filters, err := f.GetRows("Filters")
	require.NoError(t, err)
	require.Len(t, filters, 2)
	require.Equal(t, "UF-591", filters[1][0])
}

func TestExportUnknownFamily(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/v1/export/bogus", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
