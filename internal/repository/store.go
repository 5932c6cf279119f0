package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"smartlandlord/internal/domain"
)

// 集合名：快照 key 与镜像端点均按集合名寻址
const (
	CollectionTenants  = "tenants"
	CollectionPayments = "payments"
	CollectionTickets  = "tickets"
	CollectionFilters  = "filters"
	CollectionExpenses = "expenses"
	CollectionMeters   = "meters"
)

// ErrNoSnapshot 本地存储中无该集合的快照
var ErrNoSnapshot = errors.New("no snapshot")

// Snapshots 本地持久化后端：每个集合一份 JSON 数组，整份覆盖写
type Snapshots interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// Record 所有实体的共同约束
type Record interface {
	GetID() string
}

// Store 持有六个实体集合。
// 单操作者系统，但 HTTP 进程并发服务请求，所以仍然加锁。
// 每次变更后同步快照该集合；快照失败只记日志，本地内存态为准。
// 集合之间没有事务：级联是多次独立替换，中途崩溃留下的部分状态是接受的限制。
type Store struct {
	mu     sync.RWMutex
	snaps  Snapshots
	logger *zap.Logger

	tenants  []domain.Tenant
	payments []domain.PaymentRecord
	tickets  []domain.MaintenanceTicket
	filters  []domain.FilterSchedule
	expenses []domain.ExpenseRecord
	meters   []domain.MeterReading
}

func NewStore(snaps Snapshots, logger *zap.Logger) *Store {
	return &Store{snaps: snaps, logger: logger}
}

// Hydrate 启动时从快照恢复各集合；缺快照的集合保留当前内容（种子数据）
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadCollection(ctx, s, CollectionTenants, &s.tenants)
	loadCollection(ctx, s, CollectionPayments, &s.payments)
	loadCollection(ctx, s, CollectionTickets, &s.tickets)
	loadCollection(ctx, s, CollectionFilters, &s.filters)
	loadCollection(ctx, s, CollectionExpenses, &s.expenses)
	loadCollection(ctx, s, CollectionMeters, &s.meters)
}

func loadCollection[T any](ctx context.Context, s *Store, name string, dst *[]T) {
	raw, err := s.snaps.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.logger.Warn("failed to load snapshot, keeping seed data",
				zap.String("collection", name), zap.Error(err))
		}
		return
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("corrupt snapshot, keeping seed data",
			zap.String("collection", name), zap.Error(err))
		return
	}
	*dst = records
}

// persist 整份覆盖写该集合的快照；调用方需持有写锁
func persist[T any](ctx context.Context, s *Store, name string, records []T) {
	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("failed to marshal collection",
			zap.String("collection", name), zap.Error(err))
		return
	}
	if err := s.snaps.Save(ctx, name, data); err != nil {
		s.logger.Warn("failed to persist snapshot",
			zap.String("collection", name), zap.Error(err))
	}
}

// --- 集合切片上的通用操作（不可变更新：永远产出新切片） ---

func listCopy[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func findByID[T Record](src []T, id string) (T, bool) {
	for _, r := range src {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// updateByID 用合并后的副本替换匹配记录；id 不存在为 no-op
func updateByID[T Record](src []T, id string, mutate func(T) T) ([]T, bool) {
	out := make([]T, len(src))
	found := false
	for i, r := range src {
		if r.GetID() == id {
			out[i] = mutate(r)
			found = true
		} else {
			out[i] = r
		}
	}
	return out, found
}

// removeByID 过滤掉匹配记录；id 不存在为 no-op
func removeByID[T Record](src []T, id string) ([]T, bool) {
	out := make([]T, 0, len(src))
	found := false
	for _, r := range src {
		if r.GetID() == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	return out, found
}

func removeWhere[T any](src []T, drop func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, r := range src {
		if drop(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// prepend 新记录排最前（列表页新纪录置顶）
func prepend[T any](src []T, records ...T) []T {
	out := make([]T, 0, len(src)+len(records))
	out = append(out, records...)
	out = append(out, src...)
	return out
}
