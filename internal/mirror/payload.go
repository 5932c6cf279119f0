package mirror

import "smartlandlord/internal/domain"

// 镜像 payload：与试算表列一一对应的扁平 map，枚举一律转显示字符串。
// 转换失败说明内部数据已经坏了，由调用方决定丢弃并记日志。

func TenantPayload(t domain.Tenant) map[string]any {
	return map[string]any{
		"id":           t.ID,
		"name":         t.Name,
		"roomNumber":   t.RoomNumber,
		"phone":        t.Phone,
		"rentAmount":   t.RentAmount,
		"deposit":      t.Deposit,
		"moveInDate":   t.MoveInDate,
		"leaseEndDate": t.LeaseEndDate,
	}
}

// DeletePayload 删除只需要 id
func DeletePayload(id string) map[string]any {
	return map[string]any{"id": id}
}

func PaymentPayload(p domain.PaymentRecord) (map[string]any, error) {
	status, err := DisplayPaymentStatus(p.Status)
	if err != nil {
		return nil, err
	}
	typ, err := DisplayPaymentType(p.Type)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":         p.ID,
		"tenantId":   p.TenantID,
		"tenantName": p.TenantName,
		"amount":     p.Amount,
		"dueDate":    p.DueDate,
		"paidDate":   p.PaidDate,
		"status":     status,
		"type":       typ,
	}, nil
}

func TicketPayload(t domain.MaintenanceTicket) (map[string]any, error) {
	status, err := DisplayTicketStatus(t.Status)
	if err != nil {
		return nil, err
	}
	priority, err := DisplayTicketPriority(t.Priority)
	if err != nil {
		return nil, err
	}
	category, err := DisplayTicketCategory(t.Category)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":          t.ID,
		"tenantId":    t.TenantID,
		"tenantName":  t.TenantName,
		"description": t.Description,
		"reportDate":  t.ReportDate,
		"status":      status,
		"priority":    priority,
		"category":    category,
		"cost":        t.Cost,
		"notes":       t.Notes,
	}, nil
}

func FilterPayload(f domain.FilterSchedule) (map[string]any, error) {
	status, err := DisplayFilterStatus(f.Status)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":            f.ID,
		"model":         f.Model,
		"specification": f.Specification,
		"cycleMonths":   f.CycleMonths,
		"location":      f.Location,
		"lastReplaced":  f.LastReplaced,
		"nextDue":       f.NextDue,
		"status":        status,
	}, nil
}

func ExpensePayload(e domain.ExpenseRecord) (map[string]any, error) {
	category, err := DisplayExpenseCategory(e.Category)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":          e.ID,
		"category":    category,
		"amount":      e.Amount,
		"date":        e.Date,
		"description": e.Description,
	}, nil
}

func MeterPayload(m domain.MeterReading) map[string]any {
	return map[string]any{
		"id":              m.ID,
		"meterName":       m.MeterName,
		"date":            m.Date,
		"currentReading":  m.CurrentReading,
		"previousReading": m.PreviousReading,
		"usage":           m.Usage,
		"ratePerUnit":     m.RatePerUnit,
		"totalCost":       m.TotalCost,
		"note":            m.Note,
	}
}
