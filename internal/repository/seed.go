package repository

import (
	"time"

	"smartlandlord/internal/domain"
)

// DefaultFilters 滤芯更换排程的出厂种子（快照缺失时的初始内容）
func DefaultFilters(now time.Time) []domain.FilterSchedule {
	seeds := []domain.FilterSchedule{
		{ID: "f1", Model: "UF-591", Specification: "QUICK-FIT新卡式5微米PP濾芯", CycleMonths: 6, Location: "A棟 1F", LastReplaced: "2023-05-01"},
		{ID: "f2", Model: "UF-592", Specification: "QUICK-FIT新卡式塊狀活性碳濾芯", CycleMonths: 6, Location: "A棟 1F", LastReplaced: "2023-05-01"},
		{ID: "f3", Model: "UF-504", Specification: "0.0001微米逆滲透薄膜", CycleMonths: 24, Location: "A棟 1F", LastReplaced: "2022-01-15"},
		{ID: "f4", Model: "UF-28", Specification: "遠紅外線麥飯石濾芯", CycleMonths: 24, Location: "A棟 1F", LastReplaced: "2021-08-01"},
		{ID: "f5", Model: "UF-515", Specification: "椰殼顆粒活性碳後置濾芯", CycleMonths: 12, Location: "A棟 1F", LastReplaced: "2023-06-01"},
	}
	out := make([]domain.FilterSchedule, 0, len(seeds))
	for _, f := range seeds {
		out = append(out, f.Reschedule(f.LastReplaced, now))
	}
	return out
}

// SeedFilters 注入种子排程；随后的 Hydrate 若有快照会覆盖掉
func (s *Store) SeedFilters(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.filters) == 0 {
		s.filters = DefaultFilters(now)
	}
}
