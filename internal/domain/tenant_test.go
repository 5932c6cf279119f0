package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinancialHealthOf_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		payments []PaymentRecord
		want     FinancialHealth
	}{
		{"no payments", nil, HealthNone},
		{"all paid", []PaymentRecord{
			{Status: PaymentPaid}, {Status: PaymentPaid},
		}, HealthClean},
		{"paid and pending", []PaymentRecord{
			{Status: PaymentPaid}, {Status: PaymentPending},
		}, HealthPending},
		{"overdue dominates pending", []PaymentRecord{
			{Status: PaymentPending}, {Status: PaymentOverdue}, {Status: PaymentPaid},
		}, HealthOverdue},
		{"single overdue", []PaymentRecord{
			{Status: PaymentOverdue},
		}, HealthOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FinancialHealthOf(tt.payments))
		})
	}
}

func TestFinancialHealthOf_NoneIsNotClean(t *testing.T) {
	require.NotEqual(t, FinancialHealthOf(nil), HealthClean)
	require.Equal(t, HealthNone, FinancialHealthOf([]PaymentRecord{}))
}

func TestLeaseDaysRemaining(t *testing.T) {
	now := noon(t, "2024-01-01")

	require.Equal(t, 10, LeaseDaysRemaining("2024-01-11", now))
	// 向上取整：半天也算一天
	require.Equal(t, 1, LeaseDaysRemaining("2024-01-02", now))
	// 已过期不出现负数
	require.Equal(t, 0, LeaseDaysRemaining("2023-06-01", now))
	require.Equal(t, 0, LeaseDaysRemaining("", now))
}
