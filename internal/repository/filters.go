package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) Filters() []domain.FilterSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.filters)
}

func (s *Store) FilterByID(id string) (domain.FilterSchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.filters, id)
}

func (s *Store) AddFilter(ctx context.Context, f domain.FilterSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(listCopy(s.filters), f)
	persist(ctx, s, CollectionFilters, s.filters)
}

func (s *Store) UpdateFilter(ctx context.Context, id string, mutate func(domain.FilterSchedule) domain.FilterSchedule) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := updateByID(s.filters, id, mutate)
	if !found {
		return false
	}
	s.filters = next
	persist(ctx, s, CollectionFilters, s.filters)
	return true
}

func (s *Store) RemoveFilter(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.filters, id)
	if !found {
		return false
	}
	s.filters = next
	persist(ctx, s, CollectionFilters, s.filters)
	return true
}

func (s *Store) ReplaceFilters(ctx context.Context, records []domain.FilterSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = listCopy(records)
	persist(ctx, s, CollectionFilters, s.filters)
}
