package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) Payments() []domain.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.payments)
}

func (s *Store) PaymentByID(id string) (domain.PaymentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.payments, id)
}

func (s *Store) PaymentsByTenant(tenantID string) []domain.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentRecord, 0)
	for _, p := range s.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out
}

// AddPayments 批量新增（租客建档可能同时生成租金+押金两笔）
func (s *Store) AddPayments(ctx context.Context, records ...domain.PaymentRecord) {
	if len(records) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = prepend(s.payments, records...)
	persist(ctx, s, CollectionPayments, s.payments)
}

func (s *Store) UpdatePayment(ctx context.Context, id string, mutate func(domain.PaymentRecord) domain.PaymentRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := updateByID(s.payments, id, mutate)
	if !found {
		return false
	}
	s.payments = next
	persist(ctx, s, CollectionPayments, s.payments)
	return true
}

// UpdatePaymentsByTenant 对某租客名下全部款项套用变换（级联刷新用）
func (s *Store) UpdatePaymentsByTenant(ctx context.Context, tenantID string, mutate func(domain.PaymentRecord) domain.PaymentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.PaymentRecord, len(s.payments))
	for i, p := range s.payments {
		if p.TenantID == tenantID {
			next[i] = mutate(p)
		} else {
			next[i] = p
		}
	}
	s.payments = next
	persist(ctx, s, CollectionPayments, s.payments)
}

func (s *Store) RemovePayment(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.payments, id)
	if !found {
		return false
	}
	s.payments = next
	persist(ctx, s, CollectionPayments, s.payments)
	return true
}

func (s *Store) RemovePaymentsByTenant(ctx context.Context, tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = removeWhere(s.payments, func(p domain.PaymentRecord) bool {
		return p.TenantID == tenantID
	})
	persist(ctx, s, CollectionPayments, s.payments)
}

func (s *Store) ReplacePayments(ctx context.Context, records []domain.PaymentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = listCopy(records)
	persist(ctx, s, CollectionPayments, s.payments)
}
