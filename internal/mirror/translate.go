package mirror

import (
	"fmt"

	"smartlandlord/internal/domain"
)

// 镜像端（试算表）存的是显示语言字符串，内部用英文枚举。
// 两张方向互逆的表在边界上严格校验，未知值直接报错，不做猜测式兜底。

var paymentStatusDisplay = map[domain.PaymentStatus]string{
	domain.PaymentPaid:    "已繳",
	domain.PaymentPending: "待繳",
	domain.PaymentOverdue: "逾期",
}

var paymentTypeDisplay = map[domain.PaymentType]string{
	domain.PaymentRent:    "租金",
	domain.PaymentUtility: "水電",
	domain.PaymentDeposit: "押金",
	domain.PaymentOther:   "其他",
}

var ticketStatusDisplay = map[domain.TicketStatus]string{
	domain.TicketOpen:       "處理中",
	domain.TicketInProgress: "維修中",
	domain.TicketCompleted:  "已完成",
}

var ticketPriorityDisplay = map[domain.TicketPriority]string{
	domain.PriorityLow:    "低",
	domain.PriorityMedium: "中",
	domain.PriorityHigh:   "高",
}

var ticketCategoryDisplay = map[domain.TicketCategory]string{
	domain.CategoryAppliance:  "家電",
	domain.CategoryPlumbing:   "水電管路",
	domain.CategoryElectrical: "電力系統",
	domain.CategoryFilter:     "濾心耗材",
	domain.CategoryOtherWork:  "其他",
}

var filterStatusDisplay = map[domain.FilterStatus]string{
	domain.FilterGood:    "良好",
	domain.FilterDueSoon: "即將到期",
	domain.FilterOverdue: "已過期",
}

var expenseCategoryDisplay = map[domain.ExpenseCategory]string{
	domain.ExpenseWater:       "自來水費",
	domain.ExpenseElectricity: "電費",
	domain.ExpenseGas:         "瓦斯費",
	domain.ExpenseInternet:    "網路費",
	domain.ExpenseCleaning:    "清潔費",
	domain.ExpenseOther:       "雜支",
}

func reverse[K ~string](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var (
	paymentStatusInternal   = reverse(paymentStatusDisplay)
	paymentTypeInternal     = reverse(paymentTypeDisplay)
	ticketStatusInternal    = reverse(ticketStatusDisplay)
	ticketPriorityInternal  = reverse(ticketPriorityDisplay)
	ticketCategoryInternal  = reverse(ticketCategoryDisplay)
	filterStatusInternal    = reverse(filterStatusDisplay)
	expenseCategoryInternal = reverse(expenseCategoryDisplay)
)

func displayOf[K ~string](m map[K]string, v K, what string) (string, error) {
	d, ok := m[v]
	if !ok {
		return "", fmt.Errorf("unknown %s %q", what, string(v))
	}
	return d, nil
}

func internalOf[K ~string](m map[string]K, display string, what string) (K, error) {
	v, ok := m[display]
	if !ok {
		var zero K
		return zero, fmt.Errorf("unknown %s display value %q", what, display)
	}
	return v, nil
}

func DisplayPaymentStatus(s domain.PaymentStatus) (string, error) {
	return displayOf(paymentStatusDisplay, s, "payment status")
}

func ParsePaymentStatus(display string) (domain.PaymentStatus, error) {
	return internalOf(paymentStatusInternal, display, "payment status")
}

func DisplayPaymentType(t domain.PaymentType) (string, error) {
	return displayOf(paymentTypeDisplay, t, "payment type")
}

func ParsePaymentType(display string) (domain.PaymentType, error) {
	return internalOf(paymentTypeInternal, display, "payment type")
}

func DisplayTicketStatus(s domain.TicketStatus) (string, error) {
	return displayOf(ticketStatusDisplay, s, "ticket status")
}

func ParseTicketStatus(display string) (domain.TicketStatus, error) {
	return internalOf(ticketStatusInternal, display, "ticket status")
}

func DisplayTicketPriority(p domain.TicketPriority) (string, error) {
	return displayOf(ticketPriorityDisplay, p, "ticket priority")
}

func ParseTicketPriority(display string) (domain.TicketPriority, error) {
	return internalOf(ticketPriorityInternal, display, "ticket priority")
}

func DisplayTicketCategory(c domain.TicketCategory) (string, error) {
	return displayOf(ticketCategoryDisplay, c, "ticket category")
}

func ParseTicketCategory(display string) (domain.TicketCategory, error) {
	return internalOf(ticketCategoryInternal, display, "ticket category")
}

func DisplayFilterStatus(s domain.FilterStatus) (string, error) {
	return displayOf(filterStatusDisplay, s, "filter status")
}

func ParseFilterStatus(display string) (domain.FilterStatus, error) {
	return internalOf(filterStatusInternal, display, "filter status")
}

func DisplayExpenseCategory(c domain.ExpenseCategory) (string, error) {
	return displayOf(expenseCategoryDisplay, c, "expense category")
}

func ParseExpenseCategory(display string) (domain.ExpenseCategory, error) {
	return internalOf(expenseCategoryInternal, display, "expense category")
}
