package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"smartlandlord/internal/domain"
)

func TestYearlyReport(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.AddPayments(ctx,
		domain.PaymentRecord{ID: "p1", Amount: 15000, DueDate: "2024-01-05", Status: domain.PaymentPaid, Type: domain.PaymentRent},
		domain.PaymentRecord{ID: "p2", Amount: 15000, DueDate: "2024-02-05", Status: domain.PaymentPending, Type: domain.PaymentRent},
		domain.PaymentRecord{ID: "p3", Amount: 1200, DueDate: "2024-02-20", Status: domain.PaymentOverdue, Type: domain.PaymentUtility},
		domain.PaymentRecord{ID: "p4", Amount: 99999, DueDate: "2023-12-05", Status: domain.PaymentPaid, Type: domain.PaymentRent}, // 去年
		domain.PaymentRecord{ID: "p5", Amount: 500, DueDate: "bad-date", Status: domain.PaymentPaid, Type: domain.PaymentOther},
	)
	store.AddExpense(ctx, domain.ExpenseRecord{ID: "e1", Category: domain.ExpenseWater, Amount: 800, Date: "2024-01-15"})
	store.AddExpense(ctx, domain.ExpenseRecord{ID: "e2", Category: domain.ExpenseCleaning, Amount: 2000, Date: "2024-03-02"})
	store.AddExpense(ctx, domain.ExpenseRecord{ID: "e3", Category: domain.ExpenseGas, Amount: 600, Date: "2023-06-01"}) // 去年

	r := NewReportService(store).Yearly(2024)

	require.Equal(t, 15000, r.TotalPaid)
	require.Equal(t, 15000, r.TotalPending)
	require.Equal(t, 1200, r.TotalOverdue)
	require.Equal(t, 2800, r.TotalExpenses)
	require.Equal(t, 15000-2800, r.NetProfit)

	require.Equal(t, 800, r.MonthlyExpenses[0])
	require.Equal(t, 0, r.MonthlyExpenses[1])
	require.Equal(t, 2000, r.MonthlyExpenses[2])
}

func TestYearlyReportEmpty(t *testing.T) {
	r := NewReportService(newTestStore()).Yearly(2024)
	require.Equal(t, YearlyReport{Year: 2024}, r)
}
