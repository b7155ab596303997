package leave

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Saver persists a ledger snapshot after a mutation. internal/store
// provides the file-backed implementation.
type Saver interface {
	Save(Snapshot) error
}

// Snapshot is the serializable form of the ledger state: the single JSON
// document with its two top-level collections.
type Snapshot struct {
	Employees     []Employee `json:"employees"`
	LeaveRequests []Request  `json:"leave_requests"`
}

// Ledger holds employee entitlement records and leave requests and computes
// balances from them. A single mutex serializes every operation: the MCP SDK
// may dispatch handlers concurrently, and status updates are
// read-modify-write sequences with no atomicity primitives of their own.
type Ledger struct {
	mu        sync.Mutex
	employees map[string]Employee
	requests  []Request
	index     map[string]int // request ID -> position in requests

	saver  Saver
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewLedger creates an empty ledger. A nil saver keeps the ledger purely
// in-memory; a nil logger falls back to slog.Default().
func NewLedger(saver Saver, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		employees: make(map[string]Employee),
		index:     make(map[string]int),
		saver:     saver,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Restore replaces the ledger contents with the given snapshot.
func (l *Ledger) Restore(snap Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.employees = make(map[string]Employee, len(snap.Employees))
	for _, emp := range snap.Employees {
		l.employees[emp.ID] = emp
	}

	l.requests = make([]Request, len(snap.LeaveRequests))
	copy(l.requests, snap.LeaveRequests)
	l.index = make(map[string]int, len(l.requests))
	for i, req := range l.requests {
		l.index[req.ID] = i
	}

	l.logger.Debug("restored ledger",
		"employees", len(l.employees),
		"requests", len(l.requests))
}

// Snapshot returns a copy of the current ledger state, employees sorted by
// ID and requests in storage order.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() Snapshot {
	snap := Snapshot{
		Employees:     make([]Employee, 0, len(l.employees)),
		LeaveRequests: make([]Request, len(l.requests)),
	}
	for _, emp := range l.employees {
		snap.Employees = append(snap.Employees, emp)
	}
	sort.Slice(snap.Employees, func(i, j int) bool {
		return snap.Employees[i].ID < snap.Employees[j].ID
	})
	copy(snap.LeaveRequests, l.requests)
	return snap
}

// Employee looks up an employee by ID. The second return value reports
// whether the employee exists; an unknown ID is not an error.
func (l *Ledger) Employee(id string) (Employee, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	emp, ok := l.employees[id]
	return emp, ok
}

// Employees returns all employees sorted by ID ascending.
func (l *Ledger) Employees() []Employee {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Employee, 0, len(l.employees))
	for _, emp := range l.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Request looks up a leave request by ID.
func (l *Ledger) Request(id string) (Request, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i, ok := l.index[id]
	if !ok {
		return Request{}, false
	}
	return l.requests[i], true
}

// Requests returns the requests for an employee in storage order, optionally
// filtered by exact status match.
func (l *Ledger) Requests(employeeID string, status *Status) []Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Request
	for _, req := range l.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, req)
	}
	return out
}

// PendingRequests returns every pending request across all employees,
// sorted by submission time ascending.
func (l *Ledger) PendingRequests() []Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Request
	for _, req := range l.requests {
		if req.Status == StatusPending {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out
}

// Balance computes the leave position for one employee, type and year. The
// second return value is false when the employee does not exist.
//
// Only annual and sick leave carry an entitlement; every other type has a
// zero allotment, so its balance goes negative as soon as requests exist.
// That over-allocation is intentional and must not be rejected here.
func (l *Ledger) Balance(employeeID string, typ Type, year int) (Balance, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	emp, ok := l.employees[employeeID]
	if !ok {
		return Balance{}, false
	}

	var entitlement int
	switch typ {
	case TypeAnnual:
		entitlement = emp.AnnualEntitlement
	case TypeSick:
		entitlement = emp.SickEntitlement
	}

	used, pending := 0, 0
	for _, req := range l.requests {
		// A request counts toward the year its start date falls in, even
		// when the range spans a year boundary.
		if req.EmployeeID != employeeID || req.Type != typ || req.StartDate.Year != year {
			continue
		}
		switch req.Status {
		case StatusApproved:
			used += req.DaysRequested
		case StatusPending:
			pending += req.DaysRequested
		}
	}

	remaining := entitlement - used
	return Balance{
		EmployeeID:    employeeID,
		EmployeeName:  emp.Name,
		Type:          typ,
		Entitlement:   entitlement,
		UsedDays:      used,
		RemainingDays: remaining,
		PendingDays:   pending,
		AvailableDays: remaining - pending,
		Year:          year,
	}, true
}

// Submit records a new leave request. The day count is derived with weekends
// excluded (fixed policy, not caller-configurable), the status is forced to
// pending and the submission time is stamped. Employee existence, date
// ordering and remaining entitlement are deliberately not checked.
//
// The returned error reports a persistence failure only; the in-memory
// mutation is rolled back in that case.
func (l *Ledger) Submit(employeeID string, typ Type, start, end Date, reason string) (Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req := Request{
		ID:            l.newID(),
		EmployeeID:    employeeID,
		Type:          typ,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: WorkingDays(start, end, true),
		Reason:        reason,
		Status:        StatusPending,
		SubmittedAt:   l.now(),
	}

	l.requests = append(l.requests, req)
	l.index[req.ID] = len(l.requests) - 1

	if err := l.persistLocked(); err != nil {
		l.requests = l.requests[:len(l.requests)-1]
		delete(l.index, req.ID)
		return Request{}, fmt.Errorf("persisting request: %w", err)
	}

	l.logger.Debug("submitted leave request",
		"request_id", req.ID,
		"employee_id", employeeID,
		"type", typ,
		"days", req.DaysRequested)
	return req, nil
}

// SetStatus overwrites a request's status unconditionally; there is no check
// that the transition is reachable from the current status, so approving an
// already-cancelled request simply overwrites it. A non-empty approver sets
// approved_by and stamps approved_date; an empty one leaves both untouched.
// Non-empty comments replace prior comments, empty comments preserve them.
//
// The bool is false, with nothing mutated, when the request ID is unknown.
// The error reports a persistence failure only.
func (l *Ledger) SetStatus(requestID string, status Status, approvedBy, comments string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[requestID]
	if !ok {
		return false, nil
	}

	prev := l.requests[i]
	req := &l.requests[i]
	req.Status = status
	if approvedBy != "" {
		req.ApprovedBy = approvedBy
		at := l.now()
		req.ApprovedAt = &at
	}
	if comments != "" {
		req.Comments = comments
	}

	if err := l.persistLocked(); err != nil {
		l.requests[i] = prev
		return false, fmt.Errorf("persisting status update: %w", err)
	}

	l.logger.Debug("updated leave request status",
		"request_id", requestID,
		"status", status,
		"approved_by", approvedBy)
	return true, nil
}

func (l *Ledger) persistLocked() error {
	if l.saver == nil {
		return nil
	}
	return l.saver.Save(l.snapshotLocked())
}
