package domain

import "time"

// DateLayout 所有实体日期均为 "YYYY-MM-DD" 字符串
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddMonths 日历月运算（非固定30天），月底溢出按 time.AddDate 规则归一化
func AddMonths(date string, months int) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return FormatDate(t.AddDate(0, months, 0))
}
