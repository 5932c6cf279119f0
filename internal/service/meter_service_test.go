package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartlandlord/internal/mirror"
	"smartlandlord/internal/repository"
)

func meterFixture(t *testing.T) (*MeterService, *repository.Store) {
	t.Helper()
	store := newTestStore()
	svc := NewMeterService(store, mirror.NopPublisher{}, zap.NewNop())
	svc.nowFunc = fixedNow("2024-03-10 12:00")
	return svc, store
}

func TestMeterCreateComputesDerived(t *testing.T) {
	svc, _ := meterFixture(t)

	prev := 480.0
	got, err := svc.Create(context.Background(), CreateMeterReadingRequest{
		MeterName:       "A101 電表",
		Date:            "2024-03-01",
		CurrentReading:  523.4,
		PreviousReading: &prev,
		RatePerUnit:     4.5,
	})
	require.NoError(t, err)
	require.InDelta(t, 43.4, got.Usage, 1e-9)
	require.Equal(t, 195, got.TotalCost)
}

func TestMeterCreateAutoFillsPrevious(t *testing.T) {
	svc, _ := meterFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateMeterReadingRequest{
		MeterName: "A101 電表", Date: "2024-02-01", CurrentReading: 480, RatePerUnit: 4.5,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, first.PreviousReading, "没有历史时上期为 0")

	second, err := svc.Create(ctx, CreateMeterReadingRequest{
		MeterName: "A101 電表", Date: "2024-03-01", CurrentReading: 523, RatePerUnit: 4.5,
	})
	require.NoError(t, err)
	require.Equal(t, 480.0, second.PreviousReading, "自动带入同名电表最近一次读数")
	require.Equal(t, 43.0, second.Usage)

	// 别的电表互不影响
	other, err := svc.Create(ctx, CreateMeterReadingRequest{
		MeterName: "A102 電表", Date: "2024-03-01", CurrentReading: 100, RatePerUnit: 4.5,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, other.PreviousReading)
}

func TestMeterCreateClampsNegativeUsage(t *testing.T) {
	svc, _ := meterFixture(t)

	prev := 500.0
	got, err := svc.Create(context.Background(), CreateMeterReadingRequest{
		MeterName: "A101 電表", CurrentReading: 480, PreviousReading: &prev, RatePerUnit: 4.5,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Usage)
	require.Equal(t, 0, got.TotalCost)
	require.Equal(t, "2024-03-10", got.Date, "缺日期补今天")
}

func TestMeterCreateValidation(t *testing.T) {
	svc, _ := meterFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateMeterReadingRequest{CurrentReading: 10})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateMeterReadingRequest{MeterName: "m", RatePerUnit: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestMeterDelete(t *testing.T) {
	svc, store := meterFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateMeterReadingRequest{MeterName: "m", CurrentReading: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Empty(t, store.MeterReadings())
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}
