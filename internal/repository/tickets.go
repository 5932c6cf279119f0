package repository

import (
	"context"

	"smartlandlord/internal/domain"
)

func (s *Store) Tickets() []domain.MaintenanceTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCopy(s.tickets)
}

func (s *Store) AddTicket(ctx context.Context, t domain.MaintenanceTicket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = prepend(s.tickets, t)
	persist(ctx, s, CollectionTickets, s.tickets)
}

func (s *Store) UpdateTicket(ctx context.Context, id string, mutate func(domain.MaintenanceTicket) domain.MaintenanceTicket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := updateByID(s.tickets, id, mutate)
	if !found {
		return false
	}
	s.tickets = next
	persist(ctx, s, CollectionTickets, s.tickets)
	return true
}

// UpdateTicketsStatus 批量改状态，返回实际命中的单数
func (s *Store) UpdateTicketsStatus(ctx context.Context, ids []string, status domain.TicketStatus) int {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.MaintenanceTicket, len(s.tickets))
	hit := 0
	for i, t := range s.tickets {
		if _, ok := idSet[t.ID]; ok {
			t.Status = status
			hit++
		}
		next[i] = t
	}
	s.tickets = next
	persist(ctx, s, CollectionTickets, s.tickets)
	return hit
}

func (s *Store) RemoveTicket(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := removeByID(s.tickets, id)
	if !found {
		return false
	}
	s.tickets = next
	persist(ctx, s, CollectionTickets, s.tickets)
	return true
}

func (s *Store) RemoveTicketsByTenant(ctx context.Context, tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = removeWhere(s.tickets, func(t domain.MaintenanceTicket) bool {
		return t.TenantID == tenantID
	})
	persist(ctx, s, CollectionTickets, s.tickets)
}

func (s *Store) ReplaceTickets(ctx context.Context, records []domain.MaintenanceTicket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = listCopy(records)
	persist(ctx, s, CollectionTickets, s.tickets)
}
