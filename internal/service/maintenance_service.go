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

// MaintenanceService 报修单管理
type MaintenanceService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewMaintenanceService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{store: store, mirror: pub, logger: logger, nowFunc: time.Now}
}

func (s *MaintenanceService) List() []domain.MaintenanceTicket {
	return s.store.Tickets()
}

func (s *MaintenanceService) Create(ctx context.Context, t domain.MaintenanceTicket) (domain.MaintenanceTicket, error) {
	if t.TenantID == "" {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: tenantId is required", ErrValidation)
	}
	tenant, ok := s.store.TenantByID(t.TenantID)
	if !ok {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: tenant %q does not exist", ErrValidation, t.TenantID)
	}
	if t.Description == "" {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if t.ID == "" {
		t.ID = domain.NewID("mt")
	}
	if t.ReportDate == "" {
		t.ReportDate = domain.FormatDate(s.nowFunc())
	}
	if t.Status == "" {
		t.Status = domain.TicketOpen
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Category == "" {
		t.Category = domain.CategoryAppliance
	}
	if err := validateTicketEnums(t); err != nil {
		return domain.MaintenanceTicket{}, err
	}
	t.TenantName = tenant.Name

	s.store.AddTicket(ctx, t)
	s.enqueue(mirror.ActionCreate, t)
	return t, nil
}

// Update 全量编辑（状态/优先级也可在此改）；ID 不可变，租客名以 store 为准
func (s *MaintenanceService) Update(ctx context.Context, id string, t domain.MaintenanceTicket) (domain.MaintenanceTicket, error) {
	t.ID = id
	if t.TenantID == "" {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: tenantId is required", ErrValidation)
	}
	tenant, ok := s.store.TenantByID(t.TenantID)
	if !ok {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: tenant %q does not exist", ErrValidation, t.TenantID)
	}
	if err := validateTicketEnums(t); err != nil {
		return domain.MaintenanceTicket{}, err
	}
	t.TenantName = tenant.Name

	found := s.store.UpdateTicket(ctx, id, func(domain.MaintenanceTicket) domain.MaintenanceTicket { return t })
	if !found {
		return domain.MaintenanceTicket{}, ErrNotFound
	}
	s.enqueue(mirror.ActionUpdate, t)
	return t, nil
}

// UpdateStatus 单条改状态（列表页内联操作）
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (domain.MaintenanceTicket, error) {
	if !status.Valid() {
		return domain.MaintenanceTicket{}, fmt.Errorf("%w: invalid ticket status %q", ErrValidation, status)
	}
	var updated domain.MaintenanceTicket
	found := s.store.UpdateTicket(ctx, id, func(t domain.MaintenanceTicket) domain.MaintenanceTicket {
		t.Status = status
		updated = t
		return t
	})
	if !found {
		return domain.MaintenanceTicket{}, ErrNotFound
	}
	s.enqueue(mirror.ActionUpdate, updated)
	return updated, nil
}

// BatchUpdateStatus 按 id 集合批量改状态，返回命中单数；未命中的 id 忽略
func (s *MaintenanceService) BatchUpdateStatus(ctx context.Context, ids []string, status domain.TicketStatus) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids is empty", ErrValidation)
	}
	if !status.Valid() {
		return 0, fmt.Errorf("%w: invalid ticket status %q", ErrValidation, status)
	}
	hit := s.store.UpdateTicketsStatus(ctx, ids, status)
	for _, t := range s.store.Tickets() {
		for _, id := range ids {
			if t.ID == id {
				s.enqueue(mirror.ActionUpdate, t)
			}
		}
	}
	return hit, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	if !s.store.RemoveTicket(ctx, id) {
		return ErrNotFound
	}
	s.mirror.Enqueue(repository.CollectionTickets, mirror.ActionDelete, mirror.DeletePayload(id))
	return nil
}

func validateTicketEnums(t domain.MaintenanceTicket) error {
	if !t.Status.Valid() {
		return fmt.Errorf("%w: invalid ticket status %q", ErrValidation, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: invalid ticket priority %q", ErrValidation, t.Priority)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: invalid ticket category %q", ErrValidation, t.Category)
	}
	return nil
}

func (s *MaintenanceService) enqueue(action mirror.Action, t domain.MaintenanceTicket) {
	payload, err := mirror.TicketPayload(t)
	if err != nil {
		s.logger.Warn("skipping mirror push for ticket", zap.String("ticket_id", t.ID), zap.Error(err))
		return
	}
	s.mirror.Enqueue(repository.CollectionTickets, action, payload)
}
