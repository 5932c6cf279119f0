package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func noon(t *testing.T, s string) time.Time {
	t.Helper()
	return mustDate(t, s).Add(12 * time.Hour)
}

func TestFilterStatusAt(t *testing.T) {
	tests := []struct {
		name    string
		nextDue string
		now     time.Time
		want    FilterStatus
	}{
		{"far future", "2024-12-01", noon(t, "2024-01-01"), FilterGood},
		{"within 30 days", "2024-01-20", noon(t, "2024-01-01"), FilterDueSoon},
		{"exactly 30 days out", "2024-01-31", noon(t, "2024-01-01"), FilterDueSoon},
		{"31 days out", "2024-02-01", noon(t, "2024-01-01"), FilterGood},
		{"tomorrow", "2024-01-02", noon(t, "2024-01-01"), FilterDueSoon},
		// 到期日即当天：到期零点已过，属逾期，而非"当天还不算"
		{"due today", "2024-01-01", noon(t, "2024-01-01"), FilterOverdue},
		{"past due", "2023-12-01", noon(t, "2024-01-01"), FilterOverdue},
		{"unparseable date", "", noon(t, "2024-01-01"), FilterGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterStatusAt(tt.nextDue, tt.now))
		})
	}
}

func TestFilterStatusAt_Idempotent(t *testing.T) {
	now := noon(t, "2024-03-15")
	first := FilterStatusAt("2024-04-01", now)
	second := FilterStatusAt("2024-04-01", now)
	require.Equal(t, first, second)
}

func TestReschedule_CalendarMonths(t *testing.T) {
	f := FilterSchedule{ID: "f1", Model: "UF-591", CycleMonths: 6}

	now := noon(t, "2024-07-01")
	got := f.Reschedule("2024-01-01", now)

	require.Equal(t, "2024-01-01", got.LastReplaced)
	require.Equal(t, "2024-07-01", got.NextDue)
	// 2024-07-01 到期、当天中午评估：已逾期
	require.Equal(t, FilterOverdue, got.Status)
}

func TestReschedule_FutureLastReplaced(t *testing.T) {
	f := FilterSchedule{ID: "f1", CycleMonths: 6}

	now := noon(t, "2024-01-01")
	got := f.Reschedule("2024-06-01", now)

	require.Equal(t, "2024-12-01", got.NextDue)
	require.Equal(t, FilterGood, got.Status)
}

func TestReschedule_Twice_SameResult(t *testing.T) {
	f := FilterSchedule{ID: "f1", CycleMonths: 12}
	now := noon(t, "2024-05-01")

	a := f.Reschedule("2024-02-01", now)
	b := f.Reschedule("2024-02-01", now)
	require.Equal(t, a, b)
}

func TestAddMonths(t *testing.T) {
	require.Equal(t, "2024-07-01", AddMonths("2024-01-01", 6))
	require.Equal(t, "2026-01-15", AddMonths("2024-01-15", 24))
	// 月底溢出归一化（1月31日 + 1个月）
	require.Equal(t, "2024-03-02", AddMonths("2024-01-31", 1))
	require.Equal(t, "", AddMonths("bad-date", 6))
}
