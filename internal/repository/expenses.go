package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) Expenses() []domain.ExpenseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.expenses)
}

func (s *Store) AddExpense(ctx context.Context, e domain.ExpenseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = prepend(s.expenses, e)
	persist(ctx, s, CollectionExpenses, s.expenses)
}

func (s *Store) RemoveExpense(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.expenses, id)
	if !found {
		return false
	}
	s.expenses = next
	persist(ctx, s, CollectionExpenses, s.expenses)
	return true
}

func (s *Store) ReplaceExpenses(ctx context.Context, records []domain.ExpenseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = listCopy(records)
	persist(ctx, s, CollectionExpenses, s.expenses)
}
