package events

import "time"

const LifecycleTopic = "companies.lifecycle.v1"

const (
	CompanyCreated  = "company_created"
	CompanyDeleted  = "company_deleted"
	EmployeeCreated = "employee_created"
	EmployeeDeleted = "employee_deleted"
)

const (
	AggregateCompany  = "company"
	AggregateEmployee = "employee"
)

type CompanyLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Envelope holds the fields shared by every lifecycle event; consumers decode
// it first to route on EventType.
type Envelope struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
