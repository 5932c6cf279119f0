package domain

import (
	"math"
	"time"
)

// Tenant 租客（租约占用人）
type Tenant struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoomNumber      string `json:"roomNumber"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	MoveInDate      string `json:"moveInDate"`
	LeaseEndDate    string `json:"leaseEndDate"`
	RentAmount      int    `json:"rentAmount"`
	Deposit         int    `json:"deposit"`
	IDNumber        string `json:"idNumber"`
	ContractClauses string `json:"contractClauses,omitempty"`
	BiometricID     string `json:"biometricId,omitempty"`
}

func (t Tenant) GetID() string { return t.ID }

// FinancialHealth 租客财务状态（由其所有款项推导）
type FinancialHealth string

const (
	HealthOverdue FinancialHealth = "Overdue"
	HealthPending FinancialHealth = "Pending"
	HealthClean   FinancialHealth = "Clean"
	HealthNone    FinancialHealth = "None"
)

// FinancialHealthOf 推导租客财务状态。
// 检查顺序即优先级：一笔逾期压过一切，其次待缴；全部已缴为 Clean。
// 无任何款项为 None——与 Clean 不同，不能混用。
func FinancialHealthOf(payments []PaymentRecord) FinancialHealth {
	if len(payments) == 0 {
		return HealthNone
	}
	for _, p := range payments {
		if p.Status == PaymentOverdue {
			return HealthOverdue
		}
	}
	for _, p := range payments {
		if p.Status == PaymentPending {
			return HealthPending
		}
	}
	return HealthClean
}

// LeaseDaysRemaining 租约剩余天数，向上取整，不出现负数
func LeaseDaysRemaining(leaseEndDate string, now time.Time) int {
	end, err := ParseDate(leaseEndDate)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
