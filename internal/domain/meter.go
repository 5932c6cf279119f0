package domain

import "math"

// MeterReading 单次抄表记录，创建后不可修改（只能删除）
// Usage 与 TotalCost 为推导字段
type MeterReading struct {
	ID              string  `json:"id"`
	MeterName       string  `json:"meterName"`
	Date            string  `json:"date"`
	CurrentReading  float64 `json:"currentReading"`
	PreviousReading float64 `json:"previousReading"`
	Usage           float64 `json:"usage"`
	RatePerUnit     float64 `json:"ratePerUnit"`
	TotalCost       int     `json:"totalCost"`
	Note            string  `json:"note,omitempty"`
}

func (m MeterReading) GetID() string { return m.ID }

// MeterUsage 用量 = max(0, round1(本次 - 上次))。
// 读数下降（换表/归零误填）时钳到 0，不出现负用量。
func MeterUsage(current, previous float64) float64 {
	diff := math.Round((current-previous)*10) / 10
	if diff < 0 {
		return 0
	}
	return diff
}

// MeterCost 金额 = round(用量 × 单价)
func MeterCost(usage, rate float64) int {
	return int(math.Round(usage * rate))
}
