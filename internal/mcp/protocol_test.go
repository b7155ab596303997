package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connectServer creates a leave MCP server from the given config and an SDK
// client connected via in-memory transports. Returns the client session for
// making protocol calls. Both sessions are cleaned up via t.Cleanup.
func connectServer(t *testing.T, cfg Config) *mcp.ClientSession {
	t.Helper()

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

// connectTestServer creates a server backed by the seed ledger and an SDK
// client connected via in-memory transports.
func connectTestServer(t *testing.T) *mcp.ClientSession {
	t.Helper()
	return connectServer(t, newTestConfig(t))
}

// callTool invokes a tool through the JSON-RPC layer and fails the test on
// protocol errors.
func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) unexpected error: %v", name, err)
	}
	return result
}

// callToolJSON invokes a tool expecting a successful JSON text result and
// decodes it into a generic map.
func callToolJSON(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()

	result := callTool(t, session, name, args)
	if result.IsError {
		t.Fatalf("CallTool(%s) returned error result: %s", name, resultText(t, result))
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &decoded); err != nil {
		t.Fatalf("CallTool(%s) parsing JSON: %v\ntext: %s", name, err, resultText(t, result))
	}
	return decoded
}

// resultText extracts the first text content item from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("tool result has empty content")
	}
	textContent, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content[0] type = %T, want *mcp.TextContent", result.Content[0])
	}
	return textContent.Text
}

// TestProtocol_ListTools verifies that the MCP JSON-RPC tools/list endpoint
// returns all registered tools with correct names.
func TestProtocol_ListTools(t *testing.T) {
	session := connectTestServer(t)

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() unexpected error: %v", err)
	}

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	// 3 employee + 4 request + 1 calendar tools.
	wantNames := []string{
		"calculate_working_days",
		"check_leave_balance",
		"create_leave_request",
		"get_employee_info",
		"get_leave_requests",
		"get_pending_requests",
		"list_employees",
		"update_leave_status",
	}

	if len(names) != len(wantNames) {
		t.Fatalf("ListTools() returned %d tools, want %d\ngot:  %v\nwant: %v", len(names), len(wantNames), names, wantNames)
	}

	for i, got := range names {
		if got != wantNames[i] {
			t.Errorf("ListTools() tool[%d] = %q, want %q", i, got, wantNames[i])
		}
	}
}

// TestProtocol_ListTools_HaveDescriptions verifies that all tools include
// non-empty descriptions (required by MCP spec).
func TestProtocol_ListTools_HaveDescriptions(t *testing.T) {
	session := connectTestServer(t)

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() unexpected error: %v", err)
	}

	for _, tool := range result.Tools {
		if tool.Description == "" {
			t.Errorf("ListTools() tool %q has empty description", tool.Name)
		}
	}
}

func TestProtocol_CheckLeaveBalance(t *testing.T) {
	session := connectTestServer(t)

	balance := callToolJSON(t, session, "check_leave_balance", map[string]any{
		"employee_id": "EMP001",
		"leave_type":  "annual",
		"year":        2025,
	})

	// EMP001 has 25 annual days with REQ001 (5 days) approved in 2025.
	checks := map[string]float64{
		"total_entitlement": 25,
		"used_days":         5,
		"remaining_days":    20,
		"pending_days":      0,
		"available_days":    20,
		"year":              2025,
	}
	for field, want := range checks {
		got, ok := balance[field].(float64)
		if !ok {
			t.Fatalf("balance[%q] = %v (%T), want number", field, balance[field], balance[field])
		}
		if got != want {
			t.Errorf("balance[%q] = %v, want %v", field, got, want)
		}
	}
	if balance["employee_id"] != "EMP001" {
		t.Errorf("balance[employee_id] = %v, want EMP001", balance["employee_id"])
	}
	if balance["leave_type"] != "annual" {
		t.Errorf("balance[leave_type] = %v, want annual", balance["leave_type"])
	}
}

func TestProtocol_CheckLeaveBalance_PendingCounted(t *testing.T) {
	session := connectTestServer(t)

	// EMP002: 28 annual days, REQ003 pending for 8 days in 2025.
	balance := callToolJSON(t, session, "check_leave_balance", map[string]any{
		"employee_id": "EMP002",
		"leave_type":  "annual",
		"year":        2025,
	})

	if got := balance["pending_days"].(float64); got != 8 {
		t.Errorf("pending_days = %v, want 8", got)
	}
	if got := balance["remaining_days"].(float64); got != 28 {
		t.Errorf("remaining_days = %v, want 28", got)
	}
	if got := balance["available_days"].(float64); got != 20 {
		t.Errorf("available_days = %v, want 20", got)
	}
}

func TestProtocol_CheckLeaveBalance_UnknownEmployee(t *testing.T) {
	session := connectTestServer(t)

	result := callTool(t, session, "check_leave_balance", map[string]any{
		"employee_id": "EMP999",
		"leave_type":  "annual",
	})

	if !result.IsError {
		t.Fatal("check_leave_balance for unknown employee succeeded, want error result")
	}
	if text := resultText(t, result); !strings.Contains(text, "EMP999") || !strings.Contains(text, "not found") {
		t.Errorf("error text = %q, want employee-not-found message", text)
	}
}

// TestProtocol_CheckLeaveBalance_InvalidType verifies that an out-of-enum
// leave type is rejected by the schema validation at the JSON-RPC layer,
// before the handler runs.
func TestProtocol_CheckLeaveBalance_InvalidType(t *testing.T) {
	session := connectTestServer(t)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "check_leave_balance",
		Arguments: map[string]any{
			"employee_id": "EMP001",
			"leave_type":  "vacation",
		},
	})
	if err == nil {
		t.Fatal("check_leave_balance with invalid leave type succeeded, want protocol error")
	}
	if !strings.Contains(err.Error(), "vacation") {
		t.Errorf("error = %q, want to name the invalid type", err.Error())
	}
}

func TestProtocol_GetEmployeeInfo(t *testing.T) {
	session := connectTestServer(t)

	info := callToolJSON(t, session, "get_employee_info", map[string]any{
		"employee_id": "EMP003",
	})

	if info["name"] != "Rahul Deshpande" {
		t.Errorf("name = %v, want Rahul Deshpande", info["name"])
	}
	if got := info["annual_leave_entitlement"].(float64); got != 30 {
		t.Errorf("annual_leave_entitlement = %v, want 30", got)
	}
}

func TestProtocol_GetEmployeeInfo_NotFound(t *testing.T) {
	session := connectTestServer(t)

	result := callTool(t, session, "get_employee_info", map[string]any{
		"employee_id": "EMP999",
	})
	if !result.IsError {
		t.Fatal("get_employee_info for unknown employee succeeded, want error result")
	}
}

func TestProtocol_ListEmployees(t *testing.T) {
	session := connectTestServer(t)

	listing := callToolJSON(t, session, "list_employees", nil)

	if got := listing["count"].(float64); got != 5 {
		t.Errorf("count = %v, want 5", got)
	}
	employees, ok := listing["employees"].([]any)
	if !ok {
		t.Fatalf("employees = %T, want array", listing["employees"])
	}
	if len(employees) != 5 {
		t.Fatalf("len(employees) = %d, want 5", len(employees))
	}
	first := employees[0].(map[string]any)
	if first["employee_id"] != "EMP001" {
		t.Errorf("employees[0].employee_id = %v, want EMP001 (sorted by ID)", first["employee_id"])
	}
}

func TestProtocol_GetLeaveRequests_StatusFilter(t *testing.T) {
	session := connectTestServer(t)

	all := callToolJSON(t, session, "get_leave_requests", map[string]any{
		"employee_id": "EMP001",
	})
	if got := all["count"].(float64); got != 2 {
		t.Errorf("unfiltered count = %v, want 2", got)
	}

	approved := callToolJSON(t, session, "get_leave_requests", map[string]any{
		"employee_id": "EMP001",
		"status":      "approved",
	})
	if got := approved["count"].(float64); got != 2 {
		t.Errorf("approved count = %v, want 2", got)
	}

	pending := callToolJSON(t, session, "get_leave_requests", map[string]any{
		"employee_id": "EMP001",
		"status":      "pending",
	})
	if got := pending["count"].(float64); got != 0 {
		t.Errorf("pending count = %v, want 0", got)
	}
}

// TestProtocol_CreateAndApproveFlow drives a full request lifecycle through
// the protocol: submit, observe it pending, approve it, observe the balance
// change.
func TestProtocol_CreateAndApproveFlow(t *testing.T) {
	session := connectTestServer(t)

	created := callToolJSON(t, session, "create_leave_request", map[string]any{
		"employee_id": "EMP004",
		"leave_type":  "annual",
		"start_date":  "2025-10-06",
		"end_date":    "2025-10-10",
		"reason":      "Family function",
	})

	requestID, ok := created["request_id"].(string)
	if !ok || requestID == "" {
		t.Fatalf("request_id = %v, want non-empty string", created["request_id"])
	}
	if created["status"] != "pending" {
		t.Errorf("status = %v, want pending", created["status"])
	}
	// Mon Oct 6 through Fri Oct 10 2025 is a full working week.
	if got := created["days_requested"].(float64); got != 5 {
		t.Errorf("days_requested = %v, want 5", got)
	}

	pending := callToolJSON(t, session, "get_pending_requests", nil)
	found := false
	for _, item := range pending["requests"].([]any) {
		if item.(map[string]any)["request_id"] == requestID {
			found = true
		}
	}
	if !found {
		t.Errorf("get_pending_requests does not include %s", requestID)
	}

	updated := callToolJSON(t, session, "update_leave_status", map[string]any{
		"request_id":  requestID,
		"status":      "approved",
		"approved_by": "HR Manager",
		"comments":    "Enjoy",
	})
	if updated["status"] != "approved" {
		t.Errorf("updated status = %v, want approved", updated["status"])
	}
	if updated["approved_by"] != "HR Manager" {
		t.Errorf("approved_by = %v, want HR Manager", updated["approved_by"])
	}

	balance := callToolJSON(t, session, "check_leave_balance", map[string]any{
		"employee_id": "EMP004",
		"leave_type":  "annual",
		"year":        2025,
	})
	if got := balance["used_days"].(float64); got != 5 {
		t.Errorf("used_days after approval = %v, want 5", got)
	}
	if got := balance["available_days"].(float64); got != 17 {
		t.Errorf("available_days after approval = %v, want 17", got)
	}
}

func TestProtocol_CreateLeaveRequest_InvalidDate(t *testing.T) {
	session := connectTestServer(t)

	result := callTool(t, session, "create_leave_request", map[string]any{
		"employee_id": "EMP001",
		"leave_type":  "annual",
		"start_date":  "06/10/2025",
		"end_date":    "2025-10-10",
		"reason":      "Trip",
	})
	if !result.IsError {
		t.Fatal("create_leave_request with malformed date succeeded, want error result")
	}
}

func TestProtocol_UpdateLeaveStatus_UnknownRequest(t *testing.T) {
	session := connectTestServer(t)

	result := callTool(t, session, "update_leave_status", map[string]any{
		"request_id":  "REQ999",
		"status":      "approved",
		"approved_by": "HR Manager",
	})
	if !result.IsError {
		t.Fatal("update_leave_status for unknown request succeeded, want error result")
	}
	if text := resultText(t, result); !strings.Contains(text, "REQ999") {
		t.Errorf("error text = %q, want to name the request ID", text)
	}
}

func TestProtocol_CalculateWorkingDays(t *testing.T) {
	session := connectTestServer(t)

	tests := []struct {
		name     string
		args     map[string]any
		wantDays float64
	}{
		{
			name: "default excludes weekends",
			args: map[string]any{
				"start_date": "2025-12-20",
				"end_date":   "2025-12-31",
			},
			wantDays: 8,
		},
		{
			name: "calendar days when weekends included",
			args: map[string]any{
				"start_date":       "2025-12-20",
				"end_date":         "2025-12-31",
				"exclude_weekends": false,
			},
			wantDays: 12,
		},
		{
			name: "inverted range",
			args: map[string]any{
				"start_date": "2025-12-31",
				"end_date":   "2025-12-20",
			},
			wantDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callToolJSON(t, session, "calculate_working_days", tt.args)
			if got := result["working_days"].(float64); got != tt.wantDays {
				t.Errorf("working_days = %v, want %v", got, tt.wantDays)
			}
		})
	}
}

// TestProtocol_CallTool_UnknownTool verifies that calling a non-existent tool
// returns a proper error through the JSON-RPC layer.
func TestProtocol_CallTool_UnknownTool(t *testing.T) {
	session := connectTestServer(t)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "nonexistent_tool",
	})
	if err == nil {
		t.Fatal("CallTool(nonexistent_tool) expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent_tool") {
		t.Errorf("CallTool(nonexistent_tool) error = %q, want to contain tool name", err.Error())
	}
}

func TestProtocol_ListResources(t *testing.T) {
	session := connectTestServer(t)

	result, err := session.ListResources(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListResources() unexpected error: %v", err)
	}

	var uris []string
	for _, res := range result.Resources {
		uris = append(uris, res.URI)
	}
	sort.Strings(uris)

	want := []string{employeesURI, policiesURI}
	sort.Strings(want)
	if len(uris) != len(want) {
		t.Fatalf("ListResources() returned %v, want %v", uris, want)
	}
	for i := range want {
		if uris[i] != want[i] {
			t.Errorf("ListResources() uri[%d] = %q, want %q", i, uris[i], want[i])
		}
	}
}

func TestProtocol_ReadEmployeesResource(t *testing.T) {
	session := connectTestServer(t)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: employeesURI,
	})
	if err != nil {
		t.Fatalf("ReadResource(%s) unexpected error: %v", employeesURI, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("ReadResource(%s) returned %d contents, want 1", employeesURI, len(result.Contents))
	}

	var doc struct {
		Employees     []json.RawMessage `json:"employees"`
		LeaveRequests []json.RawMessage `json:"leave_requests"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &doc); err != nil {
		t.Fatalf("ReadResource(%s) parsing JSON: %v", employeesURI, err)
	}
	if len(doc.Employees) != 5 {
		t.Errorf("employees in snapshot = %d, want 5", len(doc.Employees))
	}
	if len(doc.LeaveRequests) != 3 {
		t.Errorf("leave requests in snapshot = %d, want 3", len(doc.LeaveRequests))
	}
}

func TestProtocol_ReadPoliciesResource(t *testing.T) {
	session := connectTestServer(t)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: policiesURI,
	})
	if err != nil {
		t.Fatalf("ReadResource(%s) unexpected error: %v", policiesURI, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("ReadResource(%s) returned %d contents, want 1", policiesURI, len(result.Contents))
	}

	text := result.Contents[0].Text
	for _, section := range []string{"ANNUAL LEAVE", "SICK LEAVE", "APPROVAL PROCESS"} {
		if !strings.Contains(text, section) {
			t.Errorf("policy document missing %q section", section)
		}
	}
}

func TestProtocol_ReadResource_UnknownURI(t *testing.T) {
	session := connectTestServer(t)

	_, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "hr://payroll",
	})
	if err == nil {
		t.Fatal("ReadResource(hr://payroll) expected error, got nil")
	}
}
