package service

import (
	"smartlandlord/internal/domain"
	"smartlandlord/internal/repository"
)

// YearlyReport 营运看板数据，按年度切片
type YearlyReport struct {
	Year            int     `json:"year"`
	TotalPaid       int     `json:"totalPaid"`
	TotalPending    int     `json:"totalPending"`
	TotalOverdue    int     `json:"totalOverdue"`
	TotalExpenses   int     `json:"totalExpenses"`
	NetProfit       int     `json:"netProfit"`
	MonthlyExpenses [12]int `json:"monthlyExpenses"`
}

type ReportService struct {
	store *repository.Store
}

func NewReportService(store *repository.Store) *ReportService {
	return &ReportService{store: store}
}

// Yearly 汇总某年度收支。款项按 dueDate 归年，支出按 date 归年，
// 日期解析失败的记录不计入。净利 = 已收 - 总支出（待收逾期不算收入）。
func (s *ReportService) Yearly(year int) YearlyReport {
	r := YearlyReport{Year: year}

	for _, p := range s.store.Payments() {
		due, err := domain.ParseDate(p.DueDate)
		if err != nil || due.Year() != year {
			continue
		}
		switch p.Status {
		case domain.PaymentPaid:
			r.TotalPaid += p.Amount
		case domain.PaymentPending:
			r.TotalPending += p.Amount
		case domain.PaymentOverdue:
			r.TotalOverdue += p.Amount
		}
	}

	for _, e := range s.store.Expenses() {
		d, err := domain.ParseDate(e.Date)
		if err != nil || d.Year() != year {
			continue
		}
		r.TotalExpenses += e.Amount
		r.MonthlyExpenses[int(d.Month())-1] += e.Amount
	}

	r.NetProfit = r.TotalPaid - r.TotalExpenses
	return r
}
