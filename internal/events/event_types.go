package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeRegistered EventType = "employee_registered"
	EventEmployeeUpdated    EventType = "employee_updated"
	EventEmployeeDeleted    EventType = "employee_deleted"
)

// Event represents an employee lifecycle event emitted by services.
// Payloads never carry password material.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID int64       `json:"employee_id"`
	Email      string      `json:"email"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// EmployeeRegisteredPayload payload.
type EmployeeRegisteredPayload struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// EmployeeUpdatedPayload lists which fields changed.
type EmployeeUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}
