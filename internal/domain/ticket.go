package domain

// TicketStatus 报修单状态
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "InProgress"
	TicketCompleted  TicketStatus = "Completed"
)

// TicketPriority 报修优先级
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

// TicketCategory 报修类别
type TicketCategory string

const (
	CategoryAppliance  TicketCategory = "Appliance"
	CategoryPlumbing   TicketCategory = "Plumbing"
	CategoryElectrical TicketCategory = "Electrical"
	CategoryFilter     TicketCategory = "Filter"
	CategoryOtherWork  TicketCategory = "Other"
)

// MaintenanceTicket 报修单
type MaintenanceTicket struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenantId"`
	TenantName  string         `json:"tenantName"`
	Description string         `json:"description"`
	ReportDate  string         `json:"reportDate"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	Category    TicketCategory `json:"category"`
	Cost        int            `json:"cost,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

func (t MaintenanceTicket) GetID() string { return t.ID }
