package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/leave"
)

// CheckLeaveBalanceInput is the input schema for check_leave_balance.
type CheckLeaveBalanceInput struct {
	EmployeeID string `json:"employee_id" jsonschema:"Employee ID (e.g. EMP001)"`
	LeaveType  string `json:"leave_type" jsonschema:"Type of leave to check"`
	Year       int    `json:"year,omitempty" jsonschema:"Year to check (defaults to the current year)"`
}

// GetEmployeeInfoInput is the input schema for get_employee_info.
type GetEmployeeInfoInput struct {
	EmployeeID string `json:"employee_id" jsonschema:"Employee ID (e.g. EMP001)"`
}

// ListEmployeesInput is the (empty) input schema for list_employees.
type ListEmployeesInput struct{}

// registerEmployeeTools registers the employee-facing tools.
// Tools: check_leave_balance, get_employee_info, list_employees
func (s *Server) registerEmployeeTools() error {
	balanceSchema, err := jsonschema.For[CheckLeaveBalanceInput](nil)
	if err != nil {
		return fmt.Errorf("schema for check_leave_balance: %w", err)
	}
	balanceSchema.Properties["leave_type"].Enum = leaveTypeEnum()
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_leave_balance",
		Description: "Check an employee's leave balance and availability for a given leave type and year.",
		InputSchema: balanceSchema,
	}, s.CheckLeaveBalance)

	infoSchema, err := jsonschema.For[GetEmployeeInfoInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_employee_info: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_employee_info",
		Description: "Get detailed information about an employee, including leave entitlements.",
		InputSchema: infoSchema,
	}, s.GetEmployeeInfo)

	listSchema, err := jsonschema.For[ListEmployeesInput](nil)
	if err != nil {
		return fmt.Errorf("schema for list_employees: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_employees",
		Description: "List all employees in the system, sorted by employee ID.",
		InputSchema: listSchema,
	}, s.ListEmployees)

	return nil
}

// CheckLeaveBalance handles the check_leave_balance tool call.
func (s *Server) CheckLeaveBalance(ctx context.Context, req *mcp.CallToolRequest, input CheckLeaveBalanceInput) (*mcp.CallToolResult, any, error) {
	// The schema enum rejects bad values at the JSON-RPC layer; this parse
	// is the backstop for clients that skip schema validation.
	typ, err := leave.ParseType(input.LeaveType)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}

	year := input.Year
	if year == 0 {
		year = time.Now().Year()
	}

	balance, ok := s.ledger.Balance(input.EmployeeID, typ, year)
	if !ok {
		return errorResult("employee %s not found", input.EmployeeID), nil, nil
	}

	return dataToMCP(balance), nil, nil
}

// GetEmployeeInfo handles the get_employee_info tool call.
func (s *Server) GetEmployeeInfo(ctx context.Context, req *mcp.CallToolRequest, input GetEmployeeInfoInput) (*mcp.CallToolResult, any, error) {
	emp, ok := s.ledger.Employee(input.EmployeeID)
	if !ok {
		return errorResult("employee %s not found", input.EmployeeID), nil, nil
	}

	return dataToMCP(emp), nil, nil
}

// ListEmployees handles the list_employees tool call.
func (s *Server) ListEmployees(ctx context.Context, req *mcp.CallToolRequest, input ListEmployeesInput) (*mcp.CallToolResult, any, error) {
	employees := s.ledger.Employees()
	return dataToMCP(map[string]any{
		"employees": employees,
		"count":     len(employees),
	}), nil, nil
}
