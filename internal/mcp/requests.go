package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/leave"
)

// GetLeaveRequestsInput is the input schema for get_leave_requests.
type GetLeaveRequestsInput struct {
	EmployeeID string `json:"employee_id" jsonschema:"Employee ID to get leave requests for"`
	Status     string `json:"status,omitempty" jsonschema:"Filter by leave request status (optional)"`
}

// CreateLeaveRequestInput is the input schema for create_leave_request.
type CreateLeaveRequestInput struct {
	EmployeeID string `json:"employee_id" jsonschema:"Employee ID"`
	LeaveType  string `json:"leave_type" jsonschema:"Type of leave"`
	StartDate  string `json:"start_date" jsonschema:"Start date of leave (YYYY-MM-DD)"`
	EndDate    string `json:"end_date" jsonschema:"End date of leave (YYYY-MM-DD)"`
	Reason     string `json:"reason" jsonschema:"Reason for leave"`
}

// UpdateLeaveStatusInput is the input schema for update_leave_status.
type UpdateLeaveStatusInput struct {
	RequestID  string `json:"request_id" jsonschema:"Leave request ID"`
	Status     string `json:"status" jsonschema:"New status for the leave request"`
	ApprovedBy string `json:"approved_by" jsonschema:"Name of the person approving or rejecting"`
	Comments   string `json:"comments,omitempty" jsonschema:"Optional comments about the decision"`
}

// GetPendingRequestsInput is the (empty) input schema for get_pending_requests.
type GetPendingRequestsInput struct{}

// registerRequestTools registers the request lifecycle tools.
// Tools: get_leave_requests, create_leave_request, update_leave_status,
// get_pending_requests
func (s *Server) registerRequestTools() error {
	listSchema, err := jsonschema.For[GetLeaveRequestsInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_leave_requests: %w", err)
	}
	listSchema.Properties["status"].Enum = statusEnum()
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_leave_requests",
		Description: "Get leave requests for an employee, optionally filtered by status.",
		InputSchema: listSchema,
	}, s.GetLeaveRequests)

	createSchema, err := jsonschema.For[CreateLeaveRequestInput](nil)
	if err != nil {
		return fmt.Errorf("schema for create_leave_request: %w", err)
	}
	createSchema.Properties["leave_type"].Enum = leaveTypeEnum()
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_leave_request",
		Description: "Create a new leave request for an employee. Requested days are working days (weekends excluded).",
		InputSchema: createSchema,
	}, s.CreateLeaveRequest)

	updateSchema, err := jsonschema.For[UpdateLeaveStatusInput](nil)
	if err != nil {
		return fmt.Errorf("schema for update_leave_status: %w", err)
	}
	updateSchema.Properties["status"].Enum = statusEnum()
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_leave_status",
		Description: "Approve, reject or cancel a leave request.",
		InputSchema: updateSchema,
	}, s.UpdateLeaveStatus)

	pendingSchema, err := jsonschema.For[GetPendingRequestsInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_pending_requests: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pending_requests",
		Description: "Get all pending leave requests that need approval, oldest first.",
		InputSchema: pendingSchema,
	}, s.GetPendingRequests)

	return nil
}

// GetLeaveRequests handles the get_leave_requests tool call. Requests are
// presented newest-submitted first; the ledger itself keeps storage order.
func (s *Server) GetLeaveRequests(ctx context.Context, req *mcp.CallToolRequest, input GetLeaveRequestsInput) (*mcp.CallToolResult, any, error) {
	var filter *leave.Status
	if input.Status != "" {
		// Backstop for clients that skip schema validation of the enum.
		st, err := leave.ParseStatus(input.Status)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}
		filter = &st
	}

	requests := s.ledger.Requests(input.EmployeeID, filter)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})

	return dataToMCP(map[string]any{
		"employee_id": input.EmployeeID,
		"requests":    requests,
		"count":       len(requests),
	}), nil, nil
}

// CreateLeaveRequest handles the create_leave_request tool call. The ledger
// accepts the request as given: unknown employees, inverted date ranges and
// exceeded entitlements are all recorded, not rejected.
func (s *Server) CreateLeaveRequest(ctx context.Context, req *mcp.CallToolRequest, input CreateLeaveRequestInput) (*mcp.CallToolResult, any, error) {
	// Backstop for clients that skip schema validation of the enum.
	typ, err := leave.ParseType(input.LeaveType)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}
	start, err := leave.ParseDate(input.StartDate)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}
	end, err := leave.ParseDate(input.EndDate)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}

	created, err := s.ledger.Submit(input.EmployeeID, typ, start, end, input.Reason)
	if err != nil {
		return nil, nil, fmt.Errorf("create_leave_request failed: %w", err)
	}

	s.logger.Info("leave request created",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.Type)
	return dataToMCP(created), nil, nil
}

// UpdateLeaveStatus handles the update_leave_status tool call.
func (s *Server) UpdateLeaveStatus(ctx context.Context, req *mcp.CallToolRequest, input UpdateLeaveStatusInput) (*mcp.CallToolResult, any, error) {
	// Backstop for clients that skip schema validation of the enum.
	status, err := leave.ParseStatus(input.Status)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}

	ok, err := s.ledger.SetStatus(input.RequestID, status, input.ApprovedBy, input.Comments)
	if err != nil {
		return nil, nil, fmt.Errorf("update_leave_status failed: %w", err)
	}
	if !ok {
		return errorResult("leave request %s not found", input.RequestID), nil, nil
	}

	updated, _ := s.ledger.Request(input.RequestID)
	s.logger.Info("leave request updated",
		"request_id", input.RequestID,
		"status", status,
		"approved_by", input.ApprovedBy)
	return dataToMCP(updated), nil, nil
}

// GetPendingRequests handles the get_pending_requests tool call.
func (s *Server) GetPendingRequests(ctx context.Context, req *mcp.CallToolRequest, input GetPendingRequestsInput) (*mcp.CallToolResult, any, error) {
	requests := s.ledger.PendingRequests()
	return dataToMCP(map[string]any{
		"requests": requests,
		"count":    len(requests),
	}), nil, nil
}
