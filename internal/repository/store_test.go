package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartlandlord/internal/domain"
)

func newTestStore() (*Store, *fakeSnapshots) {
	snaps := newFakeSnapshots()
	return NewStore(snaps, zap.NewNop()), snaps
}

func TestStore_AddUpdateRemoveTenant(t *testing.T) {
	ctx := context.Background()
	s, snaps := newTestStore()

	s.AddTenant(ctx, domain.Tenant{ID: "t-1", Name: "王小明", RentAmount: 15000})

	got, ok := s.TenantByID("t-1")
	require.True(t, ok)
	require.Equal(t, "王小明", got.Name)

	ok = s.UpdateTenant(ctx, "t-1", func(tn domain.Tenant) domain.Tenant {
		tn.RentAmount = 16000
		return tn
	})
	require.True(t, ok)
	got, _ = s.TenantByID("t-1")
	require.Equal(t, 16000, got.RentAmount)

	// 不存在的 id 为 no-op
	require.False(t, s.UpdateTenant(ctx, "t-404", func(tn domain.Tenant) domain.Tenant { return tn }))
	require.False(t, s.RemoveTenant(ctx, "t-404"))

	require.True(t, s.RemoveTenant(ctx, "t-1"))
	require.Empty(t, s.Tenants())

	// 每次变更都同步落一份快照；no-op 不落盘
	require.Equal(t, 3, snaps.saves)
}

func TestStore_ReadersGetCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.AddTenant(ctx, domain.Tenant{ID: "t-1", Name: "before"})

	list := s.Tenants()
	list[0].Name = "mutated"

	got, _ := s.TenantByID("t-1")
	require.Equal(t, "before", got.Name)
}

func TestStore_PaymentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	s.AddPayments(ctx, domain.PaymentRecord{ID: "p-1"})
	s.AddPayments(ctx, domain.PaymentRecord{ID: "p-2"})

	got := s.Payments()
	require.Equal(t, "p-2", got[0].ID)
	require.Equal(t, "p-1", got[1].ID)
}

func TestStore_UpdateTicketsStatus_Batch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.AddTicket(ctx, domain.MaintenanceTicket{ID: "mt-1", Status: domain.TicketOpen})
	s.AddTicket(ctx, domain.MaintenanceTicket{ID: "mt-2", Status: domain.TicketOpen})
	s.AddTicket(ctx, domain.MaintenanceTicket{ID: "mt-3", Status: domain.TicketOpen})

	hit := s.UpdateTicketsStatus(ctx, []string{"mt-1", "mt-3", "mt-404"}, domain.TicketCompleted)
	require.Equal(t, 2, hit)

	for _, tk := range s.Tickets() {
		switch tk.ID {
		case "mt-1", "mt-3":
			require.Equal(t, domain.TicketCompleted, tk.Status)
		default:
			require.Equal(t, domain.TicketOpen, tk.Status)
		}
	}
}

func TestStore_LatestReadingFor(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.AddMeterReading(ctx, domain.MeterReading{ID: "m-1", MeterName: "A棟電表", Date: "2024-01-01", CurrentReading: 500})
	s.AddMeterReading(ctx, domain.MeterReading{ID: "m-2", MeterName: "A棟電表", Date: "2024-02-01", CurrentReading: 620.5})
	s.AddMeterReading(ctx, domain.MeterReading{ID: "m-3", MeterName: "B棟電表", Date: "2024-03-01", CurrentReading: 100})

	latest, ok := s.LatestReadingFor("A棟電表")
	require.True(t, ok)
	require.Equal(t, "m-2", latest.ID)

	_, ok = s.LatestReadingFor("C棟電表")
	require.False(t, ok)
}

func TestStore_HydrateRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	snaps := newFakeSnapshots()
	snaps.data[CollectionTenants] = []byte(`[{"id":"t-9","name":"回復租客","rentAmount":9000}]`)

	s := NewStore(snaps, zap.NewNop())
	s.SeedFilters(time.Now())
	s.Hydrate(ctx)

	got, ok := s.TenantByID("t-9")
	require.True(t, ok)
	require.Equal(t, "回復租客", got.Name)

	// 无快照的集合保留种子
	require.Len(t, s.Filters(), 5)
}

func TestStore_HydrateIgnoresCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	snaps := newFakeSnapshots()
	snaps.data[CollectionFilters] = []byte(`{not json array`)

	s := NewStore(snaps, zap.NewNop())
	s.SeedFilters(time.Now())
	s.Hydrate(ctx)

	require.Len(t, s.Filters(), 5)
}

func TestDefaultFilters_StatusComputedAtSeedTime(t *testing.T) {
	now, err := domain.ParseDate("2023-10-15")
	require.NoError(t, err)
	now = now.Add(12 * time.Hour)

	seeds := DefaultFilters(now)
	byID := map[string]domain.FilterSchedule{}
	for _, f := range seeds {
		byID[f.ID] = f
	}

	// UF-591: 2023-05-01 + 6个月 = 2023-11-01，17天后到期
	require.Equal(t, "2023-11-01", byID["f1"].NextDue)
	require.Equal(t, domain.FilterDueSoon, byID["f1"].Status)
	// UF-28: 2021-08-01 + 24个月 = 2023-08-01，已逾期
	require.Equal(t, domain.FilterOverdue, byID["f4"].Status)
	// UF-504: 2022-01-15 + 24个月 = 2024-01-15，还早
	require.Equal(t, domain.FilterGood, byID["f3"].Status)
}
