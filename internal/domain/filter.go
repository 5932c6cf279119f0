package domain

import (
	"math"
	"time"
)

// FilterStatus 滤芯更换状态
type FilterStatus string

const (
	FilterGood    FilterStatus = "Good"
	FilterDueSoon FilterStatus = "DueSoon"
	FilterOverdue FilterStatus = "Overdue"
)

// FilterSchedule 定期更换资产（如净水器滤芯）
// NextDue 与 Status 为推导字段：NextDue = LastReplaced + CycleMonths（日历月）
type FilterSchedule struct {
	ID            string       `json:"id"`
	Model         string       `json:"model"`
	Specification string       `json:"specification"`
	CycleMonths   int          `json:"cycleMonths"`
	Location      string       `json:"location"`
	LastReplaced  string       `json:"lastReplaced"`
	NextDue       string       `json:"nextDue"`
	Status        FilterStatus `json:"status"`
}

func (f FilterSchedule) GetID() string { return f.ID }

// FilterStatusAt 按到期日对 now 分类。
// 到期时刻（到期日零点）严格早于 now 即 Overdue，所以"今天到期"在当天内任何时刻都算逾期；
// 距到期 0~30 天为 DueSoon；日期无法解析时与其余情况一并归为 Good。
func FilterStatusAt(nextDue string, now time.Time) FilterStatus {
	due, err := ParseDate(nextDue)
	if err != nil {
		return FilterGood
	}
	if due.Before(now) {
		return FilterOverdue
	}
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	if days <= 30 {
		return FilterDueSoon
	}
	return FilterGood
}

// Reschedule 以新的更换日重算 NextDue 与 Status，返回更新后的副本
func (f FilterSchedule) Reschedule(lastReplaced string, now time.Time) FilterSchedule {
	f.LastReplaced = lastReplaced
	f.NextDue = AddMonths(lastReplaced, f.CycleMonths)
	f.Status = FilterStatusAt(f.NextDue, now)
	return f
}
