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

// ExpenseService 房东支出：只有新增和删除，没有修改
type ExpenseService struct {
	store   *repository.Store
	mirror  mirror.Publisher
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewExpenseService(store *repository.Store, pub mirror.Publisher, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{store: store, mirror: pub, logger: logger, nowFunc: time.Now}
}

func (s *ExpenseService) List() []domain.ExpenseRecord {
	return s.store.Expenses()
}

func (s *ExpenseService) Create(ctx context.Context, e domain.ExpenseRecord) (domain.ExpenseRecord, error) {
	if !e.Category.Valid() {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: invalid expense category %q", ErrValidation, e.Category)
	}
	if e.Amount <= 0 {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if e.ID == "" {
		e.ID = domain.NewID("exp")
	}
	if e.Date == "" {
		e.Date = domain.FormatDate(s.nowFunc())
	}

	s.store.AddExpense(ctx, e)
	s.enqueue(mirror.ActionCreate, e)
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if !s.store.RemoveExpense(ctx, id) {
		return ErrNotFound
	}
	s.mirror.Enqueue(repository.CollectionExpenses, mirror.ActionDelete, mirror.DeletePayload(id))
	return nil
}

func (s *ExpenseService) enqueue(action mirror.Action, e domain.ExpenseRecord) {
	payload, err := mirror.ExpensePayload(e)
	if err != nil {
		s.logger.Warn("skipping mirror push for expense", zap.String("expense_id", e.ID), zap.Error(err))
		return
	}
	s.mirror.Enqueue(repository.CollectionExpenses, action, payload)
}
