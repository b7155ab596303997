package leave

import (
	"fmt"
	"time"
)

// Type classifies a leave request. Only annual and sick carry a tracked
// entitlement; the remaining types accrue usage against a zero allotment.
type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeEmergency Type = "emergency"
)

// Types lists every valid leave type, in schema declaration order.
func Types() []Type {
	return []Type{TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeEmergency}
}

// ParseType converts a string to a Type. Out-of-range strings are an
// explicit invalid-argument failure, never a silent default.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeEmergency:
		return t, nil
	}
	return "", fmt.Errorf("invalid leave type %q", s)
}

// Status is the lifecycle state of a leave request. The initial state is
// always pending; cancellation is a status value, not a deletion.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid request status.
func Statuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}
}

// ParseStatus converts a string to a Status, rejecting anything outside
// the closed set.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("invalid leave status %q", s)
}

// Employee is a provisioned staff record. Entitlements are integer days per
// year. Employees are never deleted, only deactivated.
type Employee struct {
	ID                string `json:"employee_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Department        string `json:"department"`
	HireDate          Date   `json:"hire_date"`
	AnnualEntitlement int    `json:"annual_leave_entitlement"`
	SickEntitlement   int    `json:"sick_leave_entitlement"`
	Active            bool   `json:"is_active"`
}

// Request is a single leave request. DaysRequested is derived from the date
// range at submission time and not recomputed afterwards.
type Request struct {
	ID            string     `json:"request_id"`
	EmployeeID    string     `json:"employee_id"`
	Type          Type       `json:"leave_type"`
	StartDate     Date       `json:"start_date"`
	EndDate       Date       `json:"end_date"`
	DaysRequested int        `json:"days_requested"`
	Reason        string     `json:"reason"`
	Status        Status     `json:"status"`
	SubmittedAt   time.Time  `json:"submitted_date"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_date,omitempty"`
	Comments      string     `json:"comments,omitempty"`
}

// Balance is the per-employee, per-type, per-year leave position. It is a
// pure function of the employee record and the request collection, computed
// on every query and never persisted. Available may be negative: the model
// permits over-allocation.
type Balance struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Type          Type   `json:"leave_type"`
	Entitlement   int    `json:"total_entitlement"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
	PendingDays   int    `json:"pending_days"`
	AvailableDays int    `json:"available_days"`
	Year          int    `json:"year"`
}
