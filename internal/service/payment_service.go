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

// UpdatePaymentRequest 款项编辑请求；nil 字段不动
type UpdatePaymentRequest struct {
	Amount   *int                  `json:"amount"`
	DueDate  *string               `json:"dueDate"`
	PaidDate *string               `json:"paidDate"`
	Status   *domain.PaymentStatus `json:"status"`
}

type PaymentService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewPaymentService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *PaymentService {
	return &PaymentService{store: store, mirror: pub, logger: logger, nowFunc: time.Now}
}

func (s *PaymentService) List() []domain.PaymentRecord {
	return s.store.Payments()
}

func (s *PaymentService) Get(id string) (domain.PaymentRecord, error) {
	p, ok := s.store.PaymentByID(id)
	if !ok {
		return domain.PaymentRecord{}, ErrNotFound
	}
	return p, nil
}

// DaysOverdue 相对今天的逾期天数；未到期或日期无法解析为 0
func (s *PaymentService) DaysOverdue(p domain.PaymentRecord) int {
	due, err := domain.ParseDate(p.DueDate)
	if err != nil {
		return 0
	}
	days := int(s.nowFunc().Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Create 新增单笔款项。tenantId 必须指向现存租客（创建时点校验），
// 反规范化姓名从租客档案带入，不信 payload。
func (s *PaymentService) Create(ctx context.Context, p domain.PaymentRecord) (domain.PaymentRecord, error) {
	if p.TenantID == "" {
		return domain.PaymentRecord{}, fmt.Errorf("%w: tenantId is required", ErrValidation)
	}
	tenant, ok := s.store.TenantByID(p.TenantID)
	if !ok {
		return domain.PaymentRecord{}, fmt.Errorf("%w: tenant %q does not exist", ErrValidation, p.TenantID)
	}
	if p.Amount <= 0 {
		return domain.PaymentRecord{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !p.Type.Valid() {
		return domain.PaymentRecord{}, fmt.Errorf("%w: invalid payment type %q", ErrValidation, p.Type)
	}
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	if !p.Status.Valid() {
		return domain.PaymentRecord{}, fmt.Errorf("%w: invalid payment status %q", ErrValidation, p.Status)
	}
	if p.ID == "" {
		p.ID = domain.NewID("pay")
	}
	if p.DueDate == "" {
		p.DueDate = domain.FormatDate(s.nowFunc())
	}
	p.TenantName = tenant.Name

	s.store.AddPayments(ctx, p)
	s.enqueue(mirror.ActionCreate, p)
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, id string, req UpdatePaymentRequest) (domain.PaymentRecord, error) {
	if req.Status != nil && !req.Status.Valid() {
		return domain.PaymentRecord{}, fmt.Errorf("%w: invalid payment status %q", ErrValidation, *req.Status)
	}

	var updated domain.PaymentRecord
	found := s.store.UpdatePayment(ctx, id, func(p domain.PaymentRecord) domain.PaymentRecord {
		if req.Amount != nil {
			p.Amount = *req.Amount
		}
		if req.DueDate != nil {
			p.DueDate = *req.DueDate
		}
		if req.PaidDate != nil {
			p.PaidDate = *req.PaidDate
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		updated = p
		return p
	})
	if !found {
		return domain.PaymentRecord{}, ErrNotFound
	}
	s.enqueue(mirror.ActionUpdate, updated)
	return updated, nil
}

// MarkPaid 一键标记已缴：状态转 Paid，缴费日补今天
func (s *PaymentService) MarkPaid(ctx context.Context, id string) (domain.PaymentRecord, error) {
	status := domain.PaymentPaid
	today := domain.FormatDate(s.nowFunc())
	return s.Update(ctx, id, UpdatePaymentRequest{Status: &status, PaidDate: &today})
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if !s.store.RemovePayment(ctx, id) {
		return ErrNotFound
	}
	s.mirror.Enqueue(repository.CollectionPayments, mirror.ActionDelete, mirror.DeletePayload(id))
	return nil
}

func (s *PaymentService) enqueue(action mirror.Action, p domain.PaymentRecord) {
	payload, err := mirror.PaymentPayload(p)
	if err != nil {
		s.logger.Warn("skipping mirror push for payment", zap.String("payment_id", p.ID), zap.Error(err))
		return
	}
	s.mirror.Enqueue(repository.CollectionPayments, action, payload)
}
