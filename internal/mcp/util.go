package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/leave"
)

// dataToMCP converts arbitrary data to MCP text content via JSON marshaling.
// All success payloads become JSON; clients parse them.
func dataToMCP(data any) *mcp.CallToolResult {
	b, err := json.Marshal(data)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "marshal error"}},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

// errorResult builds a domain-failure result. Not-found and invalid-argument
// conditions are results the client inspects, never protocol errors.
func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// leaveTypeEnum returns the closed leave-type set for schema enum lists.
func leaveTypeEnum() []any {
	types := leave.Types()
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// statusEnum returns the closed status set for schema enum lists.
func statusEnum() []any {
	statuses := leave.Statuses()
	out := make([]any, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}
