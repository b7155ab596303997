package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/leave"
)

// CalculateWorkingDaysInput is the input schema for calculate_working_days.
type CalculateWorkingDaysInput struct {
	StartDate       string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate         string `json:"end_date" jsonschema:"End date (YYYY-MM-DD)"`
	ExcludeWeekends *bool  `json:"exclude_weekends,omitempty" jsonschema:"Whether to exclude weekends (default: true)"`
}

// registerCalendarTools registers the date arithmetic tools.
// Tools: calculate_working_days
func (s *Server) registerCalendarTools() error {
	schema, err := jsonschema.For[CalculateWorkingDaysInput](nil)
	if err != nil {
		return fmt.Errorf("schema for calculate_working_days: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_working_days",
		Description: "Calculate the number of working days between two dates, inclusive. No holiday calendar is consulted.",
		InputSchema: schema,
	}, s.CalculateWorkingDays)

	return nil
}

// CalculateWorkingDays handles the calculate_working_days tool call.
func (s *Server) CalculateWorkingDays(ctx context.Context, req *mcp.CallToolRequest, input CalculateWorkingDaysInput) (*mcp.CallToolResult, any, error) {
	start, err := leave.ParseDate(input.StartDate)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}
	end, err := leave.ParseDate(input.EndDate)
	if err != nil {
		return errorResult("%v", err), nil, nil
	}

	exclude := true
	if input.ExcludeWeekends != nil {
		exclude = *input.ExcludeWeekends
	}

	return dataToMCP(map[string]any{
		"start_date":       start.String(),
		"end_date":         end.String(),
		"total_days":       leave.WorkingDays(start, end, false),
		"exclude_weekends": exclude,
		"working_days":     leave.WorkingDays(start, end, exclude),
	}), nil, nil
}
