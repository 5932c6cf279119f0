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

// FilterService 滤芯更换排程
type FilterService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewFilterService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *FilterService {
	return &FilterService{store: store, mirror: pub, logger: logger, nowFunc: time.Now}
}

// List 状态相对"今天"而非最后一次写入时点，读取时现算
func (s *FilterService) List() []domain.FilterSchedule {
	now := s.nowFunc()
	filters := s.store.Filters()
	out := make([]domain.FilterSchedule, 0, len(filters))
	for _, f := range filters {
		f.Status = domain.FilterStatusAt(f.NextDue, now)
		out = append(out, f)
	}
	return out
}

// Reschedule 改写最后更换日并重算 NextDue 与状态
func (s *FilterService) Reschedule(ctx context.Context, id string, lastReplaced string) (domain.FilterSchedule, error) {
	if _, err := domain.ParseDate(lastReplaced); err != nil {
		return domain.FilterSchedule{}, fmt.Errorf("%w: invalid date %q", ErrValidation, lastReplaced)
	}

	now := s.nowFunc()
	var updated domain.FilterSchedule
	found := s.store.UpdateFilter(ctx, id, func(f domain.FilterSchedule) domain.FilterSchedule {
		updated = f.Reschedule(lastReplaced, now)
		return updated
	})
	if !found {
		return domain.FilterSchedule{}, ErrNotFound
	}
	s.enqueue(mirror.ActionUpdate, updated)
	return updated, nil
}

// MarkReplaced 一键"今天换好了"
func (s *FilterService) MarkReplaced(ctx context.Context, id string) (domain.FilterSchedule, error) {
	return s.Reschedule(ctx, id, domain.FormatDate(s.nowFunc()))
}

func (s *FilterService) enqueue(action mirror.Action, f domain.FilterSchedule) {
	payload, err := mirror.FilterPayload(f)
	if err != nil {
		s.logger.Warn("skipping mirror push for filter", zap.String("filter_id", f.ID), zap.Error(err))
		return
	}
	s.mirror.Enqueue(repository.CollectionFilters, action, payload)
}
