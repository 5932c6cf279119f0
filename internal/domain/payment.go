package domain

// PaymentStatus 缴费状态
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// PaymentType 款项类型
type PaymentType string

const (
	PaymentRent    PaymentType = "Rent"
	PaymentUtility PaymentType = "Utility"
	PaymentDeposit PaymentType = "Deposit"
	PaymentOther   PaymentType = "Other"
)

// PaymentRecord 单笔应缴款项
// TenantName 为反规范化字段，租客改名时由级联规则刷新
type PaymentRecord struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenantId"`
	TenantName string        `json:"tenantName"`
	Amount     int           `json:"amount"`
	DueDate    string        `json:"dueDate"`
	PaidDate   string        `json:"paidDate,omitempty"`
	Status     PaymentStatus `json:"status"`
	Type       PaymentType   `json:"type"`
}

func (p PaymentRecord) GetID() string { return p.ID }
