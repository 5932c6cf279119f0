package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) MeterReadings() []domain.MeterReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.meters)
}

// LatestReadingFor 同名电表按日期最新的一笔（新抄表时自动带入上次读数）
func (s *Store) LatestReadingFor(meterName string) (domain.MeterReading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest domain.MeterReading
	found := false
	for _, m := range s.meters {
		if m.MeterName != meterName {
			continue
		}
		if !found || m.Date > latest.Date {
			latest = m
			found = true
		}
	}
	return latest, found
}

func (s *Store) AddMeterReading(ctx context.Context, m domain.MeterReading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meters = prepend(s.meters, m)
	persist(ctx, s, CollectionMeters, s.meters)
}

func (s *Store) RemoveMeterReading(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.meters, id)
	if !found {
		return false
	}
	s.meters = next
	persist(ctx, s, CollectionMeters, s.meters)
	return true
}

func (s *Store) ReplaceMeterReadings(ctx context.Context, records []domain.MeterReading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meters = listCopy(records)
	persist(ctx, s, CollectionMeters, s.meters)
}
