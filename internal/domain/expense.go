package domain

// ExpenseCategory 房东支出类别
type ExpenseCategory string

const (
	ExpenseWater       ExpenseCategory = "Water"
	ExpenseElectricity ExpenseCategory = "Electricity"
	ExpenseGas         ExpenseCategory = "Gas"
	ExpenseInternet    ExpenseCategory = "Internet"
	ExpenseCleaning    ExpenseCategory = "Cleaning"
	ExpenseOther       ExpenseCategory = "Other"
)

// ExpenseRecord 房东侧支出，创建后不可修改（只能删除）
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Amount      int             `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

func (e ExpenseRecord) GetID() string { return e.ID }
