package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/mirror"
	"smartlandlord/internal/repository"
)

// CreateMeterReadingRequest 抄表请求。
// PreviousReading 不带时自动取同名电表最近一次的本期读数（没有历史则为 0）。
type CreateMeterReadingRequest struct {
	MeterName       string   `json:"meterName"`
	Date            string   `json:"date"`
	CurrentReading  float64  `json:"currentReading"`
	PreviousReading *float64 `json:"previousReading"`
	RatePerUnit     float64  `json:"ratePerUnit"`
	Note            string   `json:"note"`
}

// MeterService 抄表记录：只增不改，删除独立
type MeterService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewMeterService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *MeterService {
	return &MeterService{store: store, mirror: pub, logger: logger, nowFunc: time.Now}
}

func (s *MeterService) List() []domain.MeterReading {
	return s.store.MeterReadings()
}

func (s *MeterService) Create(ctx context.Context, req CreateMeterReadingRequest) (domain.MeterReading, error) {
	if req.MeterName == "" {
		return domain.MeterReading{}, fmt.Errorf("%w: meterName is required", ErrValidation)
	}
	if req.RatePerUnit < 0 {
		return domain.MeterReading{}, fmt.Errorf("%w: ratePerUnit must not be negative", ErrValidation)
	}

	previous := 0.0
	if req.PreviousReading != nil {
		previous = *req.PreviousReading
	} else if last, ok := s.store.LatestReadingFor(req.MeterName); ok {
		previous = last.CurrentReading
	}

	usage := domain.MeterUsage(req.CurrentReading, previous)
	m := domain.MeterReading{
		ID:              domain.NewID("m"),
		MeterName:       req.MeterName,
		Date:            req.Date,
		CurrentReading:  req.CurrentReading,
		PreviousReading: previous,
		Usage:           usage,
		RatePerUnit:     req.RatePerUnit,
		TotalCost:       domain.MeterCost(usage, req.RatePerUnit),
		Note:            req.Note,
	}
	if m.Date == "" {
		m.Date = domain.FormatDate(s.nowFunc())
	}

	s.store.AddMeterReading(ctx, m)
	s.mirror.Enqueue(repository.CollectionMeters, mirror.ActionCreate, mirror.MeterPayload(m))
	return m, nil
}

func (s *MeterService) Delete(ctx context.Context, id string) error {
	if !s.store.RemoveMeterReading(ctx, id) {
		return ErrNotFound
	}
	s.mirror.Enqueue(repository.CollectionMeters, mirror.ActionDelete, mirror.DeletePayload(id))
	return nil
}
