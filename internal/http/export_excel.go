package httpapi

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"smartlandlord/internal/domain"
	"smartlandlord/internal/mirror"
)

// 各报表中文表头，与前端汇出栏位一致
var (
	tenantExportHeader  = []string{"房號", "姓名", "電話", "Email", "身分證字號", "起租日期", "租期屆滿", "租金", "押金", "特別約定"}
	paymentExportHeader = []string{"租客姓名", "金額", "到期日", "狀態", "類型"}
	expenseExportHeader = []string{"日期", "類別", "金額", "說明"}
	repairExportHeader  = []string{"租客姓名", "描述", "報修日期", "狀態", "優先級", "類別", "費用", "備註"}
	filterExportHeader  = []string{"型號", "規格", "更換週期(月)", "位置", "最後更換日", "下次到期日", "狀態"}
	meterExportHeader   = []string{"電表名稱", "抄表日期", "本次讀數", "上次讀數", "使用度數", "費率", "金額", "備註"}
)

type exportSheet struct {
	name    string
	headers []string
	rows    [][]any
}

// generateWorkbook 生成带样式表头的工作簿
func generateWorkbook(sheets ...exportSheet) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo 之前不能 Close

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
		if i == 0 {
			f.DeleteSheet("Sheet1")
			f.SetActiveSheet(index)
		}

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#FFF7E6"},
				Pattern: 1,
			},
			Border: []excelize.Border{
				{Type: "left", Color: "000000", Style: 1},
				{Type: "top", Color: "000000", Style: 1},
				{Type: "bottom", Color: "000000", Style: 1},
				{Type: "right", Color: "000000", Style: 1},
			},
			Alignment: &excelize.Alignment{
				Horizontal: "center",
				Vertical:   "center",
			},
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create header style: %w", err)
		}

		for col, header := range sheet.headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet.name, cell, header); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet.name, cell, cell, headerStyle); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set header style: %w", err)
			}
		}

		lastCol, err := excelize.ColumnNumberToName(len(sheet.headers))
		if err == nil {
			_ = f.SetColWidth(sheet.name, "A", lastCol, 18)
		}

		for rowIdx, row := range sheet.rows {
			for col, v := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to convert coordinates: %w", err)
				}
				if err := f.SetCellValue(sheet.name, cell, v); err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}

// display 枚举转中文显示；映射表外的值原样输出，报表不因脏数据中断
func display[K ~string](fn func(K) (string, error), v K) string {
	s, err := fn(v)
	if err != nil {
		return string(v)
	}
	return s
}

func tenantWorkbook(tenants []domain.Tenant) ([]byte, error) {
	rows := make([][]any, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, []any{
			t.RoomNumber, t.Name, t.Phone, t.Email, t.IDNumber,
			t.MoveInDate, t.LeaseEndDate, t.RentAmount, t.Deposit, t.ContractClauses,
		})
	}
	return generateWorkbook(exportSheet{name: "Tenants", headers: tenantExportHeader, rows: rows})
}

func paymentWorkbook(payments []domain.PaymentRecord) ([]byte, error) {
	rows := make([][]any, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []any{
			p.TenantName, p.Amount, p.DueDate,
			display(mirror.DisplayPaymentStatus, p.Status),
			display(mirror.DisplayPaymentType, p.Type),
		})
	}
	return generateWorkbook(exportSheet{name: "Financials", headers: paymentExportHeader, rows: rows})
}

func expenseWorkbook(expenses []domain.ExpenseRecord) ([]byte, error) {
	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []any{
			e.Date, display(mirror.DisplayExpenseCategory, e.Category), e.Amount, e.Description,
		})
	}
	return generateWorkbook(exportSheet{name: "Expenses", headers: expenseExportHeader, rows: rows})
}

// maintenanceWorkbook 报修单与滤芯排程各一张工作表
func maintenanceWorkbook(tickets []domain.MaintenanceTicket, filters []domain.FilterSchedule) ([]byte, error) {
	repairRows := make([][]any, 0, len(tickets))
	for _, t := range tickets {
		repairRows = append(repairRows, []any{
			t.TenantName, t.Description, t.ReportDate,
			display(mirror.DisplayTicketStatus, t.Status),
			display(mirror.DisplayTicketPriority, t.Priority),
			display(mirror.DisplayTicketCategory, t.Category),
			t.Cost, t.Notes,
		})
	}
	filterRows := make([][]any, 0, len(filters))
	for _, f := range filters {
		filterRows = append(filterRows, []any{
			f.Model, f.Specification, f.CycleMonths, f.Location,
			f.LastReplaced, f.NextDue,
			display(mirror.DisplayFilterStatus, f.Status),
		})
	}
	return generateWorkbook(
		exportSheet{name: "Repairs", headers: repairExportHeader, rows: repairRows},
		exportSheet{name: "Filters", headers: filterExportHeader, rows: filterRows},
	)
}

func meterWorkbook(readings []domain.MeterReading) ([]byte, error) {
	rows := make([][]any, 0, len(readings))
	for _, m := range readings {
		rows = append(rows, []any{
			m.MeterName, m.Date, m.CurrentReading, m.PreviousReading,
			m.Usage, m.RatePerUnit, m.TotalCost, m.Note,
		})
	}
	return generateWorkbook(exportSheet{name: "電表抄表紀錄", headers: meterExportHeader, rows: rows})
}
