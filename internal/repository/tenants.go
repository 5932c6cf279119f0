package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) Tenants() []domain.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.tenants)
}

func (s *Store) TenantByID(id string) (domain.Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.tenants, id)
}

func (s *Store) AddTenant(ctx context.Context, t domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append(listCopy(s.tenants), t)
	persist(ctx, s, CollectionTenants, s.tenants)
}

func (s *Store) UpdateTenant(ctx context.Context, id string, mutate func(domain.Tenant) domain.Tenant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := updateByID(s.tenants, id, mutate)
	if !found {
		return false
	}
	s.tenants = next
	persist(ctx, s, CollectionTenants, s.tenants)
	return true
}

func (s *Store) RemoveTenant(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.tenants, id)
	if !found {
		return false
	}
	s.tenants = next
	persist(ctx, s, CollectionTenants, s.tenants)
	return true
}

// ReplaceTenants 整体替换（快照恢复或镜像覆盖时使用）
func (s *Store) ReplaceTenants(ctx context.Context, tenants []domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = listCopy(tenants)
	persist(ctx, s, CollectionTenants, s.tenants)
}
