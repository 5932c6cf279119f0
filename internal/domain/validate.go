package domain

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentRent, PaymentUtility, PaymentDeposit, PaymentOther:
		return true
	}
	return false
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketCompleted:
		return true
	}
	return false
}

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (c TicketCategory) Valid() bool {
	switch c {
	case CategoryAppliance, CategoryPlumbing, CategoryElectrical, CategoryFilter, CategoryOtherWork:
		return true
	}
	return false
}

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseWater, ExpenseElectricity, ExpenseGas, ExpenseInternet, ExpenseCleaning, ExpenseOther:
		return true
	}
	return false
}
