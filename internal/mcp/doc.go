// Package mcp implements the Model Context Protocol server for leavectl.
//
// The server exposes employee-leave operations as MCP tools over stdio so
// that MCP clients (Claude Desktop, Cursor, Genkit CLI and friends) can
// query balances, list and file leave requests, and approve or reject them.
//
// # Architecture
//
//	MCP client
//	     |  (JSON-RPC over stdio, or in-memory transport in tests)
//	     v
//	Server (official MCP SDK)
//	     |
//	     +-- tool registry: one typed handler per operation
//	     +-- resource registry: hr://employees, hr://leave-policies
//	     v
//	leave.Ledger (balance calculation, request lifecycle)
//	     v
//	store.File (JSON document, optional)
//
// # Tool handler pattern
//
// Handlers follow the net/http.Handler convention: a typed input struct with
// a JSON schema inferred via jsonschema-go, registered with mcp.AddTool, and
// the MCP response built inline. There are no conversion layers.
//
// # Error handling
//
// Two kinds of failures cross the boundary differently:
//
//   - Domain failures (unknown employee or request ID, malformed date)
//     come back as successful responses with IsError set, so clients can
//     inspect them as results.
//   - System failures (persistence errors) are returned as Go errors and
//     surface as protocol-level errors.
//
// Enum-tagged fields are validated against the schema at the JSON-RPC layer,
// so out-of-enum values never reach a handler through a validating client;
// the handler-side parse calls are a backstop for clients that skip schema
// validation, and those produce IsError results. Unknown tool names and
// unknown resource URIs are rejected by the SDK with a structured JSON-RPC
// error; the server registers no catch-all.
package mcp
