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

// GenerateOptions 租客建档时是否顺带生成首期款项
type GenerateOptions struct {
	GenRent    bool `json:"genRent"`
	GenDeposit bool `json:"genDeposit"`
}

// TenantOverview 租客 + 推导字段（财务状态、租约剩余天数）
type TenantOverview struct {
	domain.Tenant
	FinancialHealth    domain.FinancialHealth `json:"financialHealth"`
	LeaseDaysRemaining int                    `json:"leaseDaysRemaining"`
}

// TenantService 租客生命周期 + 级联规则。
// 底下没有外键层，款项/报修单上的反规范化数据全靠这里的级联保持一致。
type TenantService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewTenantService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *TenantService {
	return &TenantService{
		store:   store,
		mirror:  pub,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// List 返回全部租客及其推导字段
func (s *TenantService) List() []TenantOverview {
	now := s.nowFunc()
	tenants := s.store.Tenants()
	out := make([]TenantOverview, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, TenantOverview{
			Tenant:             t,
			FinancialHealth:    domain.FinancialHealthOf(s.store.PaymentsByTenant(t.ID)),
			LeaseDaysRemaining: domain.LeaseDaysRemaining(t.LeaseEndDate, now),
		})
	}
	return out
}

func (s *TenantService) Get(id string) (TenantOverview, error) {
	t, ok := s.store.TenantByID(id)
	if !ok {
		return TenantOverview{}, ErrNotFound
	}
	return TenantOverview{
		Tenant:             t,
		FinancialHealth:    domain.FinancialHealthOf(s.store.PaymentsByTenant(id)),
		LeaseDaysRemaining: domain.LeaseDaysRemaining(t.LeaseEndDate, s.nowFunc()),
	}, nil
}

// Create 新增租客。未带 ID 时分配；按选项生成 0~2 笔待缴款项（租金/押金），
// 日期为今天，金额取自租客档案。返回租客与生成的款项。
func (s *TenantService) Create(ctx context.Context, t domain.Tenant, opts GenerateOptions) (domain.Tenant, []domain.PaymentRecord, error) {
	if t.Name == "" {
		return domain.Tenant{}, nil, fmt.Errorf("%w: tenant name is required", ErrValidation)
	}
	if t.ID == "" {
		t.ID = domain.NewID("t")
	} else if _, exists := s.store.TenantByID(t.ID); exists {
		return domain.Tenant{}, nil, fmt.Errorf("%w: tenant %q already exists", ErrValidation, t.ID)
	}

	s.store.AddTenant(ctx, t)
	s.mirror.Enqueue(repository.CollectionTenants, mirror.ActionCreate, mirror.TenantPayload(t))

	today := domain.FormatDate(s.nowFunc())
	var generated []domain.PaymentRecord
	if opts.GenRent {
		generated = append(generated, domain.PaymentRecord{
			ID:         domain.NewID("pay-r"),
			TenantID:   t.ID,
			TenantName: t.Name,
			Amount:     t.RentAmount,
			DueDate:    today,
			Status:     domain.PaymentPending,
			Type:       domain.PaymentRent,
		})
	}
	if opts.GenDeposit {
		generated = append(generated, domain.PaymentRecord{
			ID:         domain.NewID("pay-d"),
			TenantID:   t.ID,
			TenantName: t.Name,
			Amount:     t.Deposit,
			DueDate:    today,
			Status:     domain.PaymentPending,
			Type:       domain.PaymentDeposit,
		})
	}
	if len(generated) > 0 {
		s.store.AddPayments(ctx, generated...)
		for _, p := range generated {
			s.enqueuePayment(mirror.ActionCreate, p)
		}
	}
	return t, generated, nil
}

// Update 全量更新租客并级联款项：
//   - 名下所有款项刷新反规范化租客姓名
//   - 未缴清的租金款项金额同步为新租金；已缴租金与押金一律不动（历史不能被改写）
//
// ID 不可变：path 上的 id 为准，payload 里的 id 被忽略。
func (s *TenantService) Update(ctx context.Context, id string, t domain.Tenant) (domain.Tenant, error) {
	if t.Name == "" {
		return domain.Tenant{}, fmt.Errorf("%w: tenant name is required", ErrValidation)
	}
	t.ID = id

	found := s.store.UpdateTenant(ctx, id, func(domain.Tenant) domain.Tenant { return t })
	if !found {
		return domain.Tenant{}, ErrNotFound
	}
	s.mirror.Enqueue(repository.CollectionTenants, mirror.ActionUpdate, mirror.TenantPayload(t))

	s.store.UpdatePaymentsByTenant(ctx, id, func(p domain.PaymentRecord) domain.PaymentRecord {
		p.TenantName = t.Name
		if p.Type == domain.PaymentRent && p.Status != domain.PaymentPaid {
			p.Amount = t.RentAmount
		}
		return p
	})
	return t, nil
}

// Delete 删除租客并级联移除其全部款项与报修单。
// 不可逆：没有软删除，没有恢复。三个集合是三次独立替换，中途崩溃会留下部分状态。
func (s *TenantService) Delete(ctx context.Context, id string) error {
	if !s.store.RemoveTenant(ctx, id) {
		return ErrNotFound
	}
	s.store.RemovePaymentsByTenant(ctx, id)
	s.store.RemoveTicketsByTenant(ctx, id)
	s.mirror.Enqueue(repository.CollectionTenants, mirror.ActionDelete, mirror.DeletePayload(id))
	return nil
}

func (s *TenantService) enqueuePayment(action mirror.Action, p domain.PaymentRecord) {
	payload, err := mirror.PaymentPayload(p)
	if err != nil {
		s.logger.Warn("skipping mirror push for payment", zap.String("payment_id", p.ID), zap.Error(err))
		return
	}
	s.mirror.Enqueue(repository.CollectionPayments, action, payload)
}
