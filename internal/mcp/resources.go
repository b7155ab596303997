package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs exposed by the server.
const (
	employeesURI = "hr://employees"
	policiesURI  = "hr://leave-policies"
)

// leavePolicies is the static company policy document served at
// hr://leave-policies.
const leavePolicies = `COMPANY LEAVE POLICIES

ANNUAL LEAVE
- Standard entitlement: 25 days per year
- Senior employees (5+ years): 28-30 days
- Must be approved in advance
- Maximum 10 consecutive days without director approval

SICK LEAVE
- Standard entitlement: 10-15 days per year
- Medical certificate required for 3+ consecutive days
- Can be used for medical appointments

FAMILY LEAVE
- Maternity leave: up to 26 weeks
- Paternity leave: up to 4 weeks
- Emergency family leave: up to 5 days per year

APPROVAL PROCESS
- Submit requests at least 2 weeks in advance
- HR manager approval required
- Department head approval for extended leave

IMPORTANT NOTES
- Leave cannot be carried over without approval
- Unused sick leave expires at year end
- All leave subject to business requirements
`

// registerResources registers the read-only resources. Requests for URIs
// outside this set are rejected by the SDK with a structured error.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         employeesURI,
		Name:        "Employee Directory",
		Description: "Snapshot of all employees and leave requests with their entitlements",
		MIMEType:    "application/json",
	}, s.ReadEmployees)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         policiesURI,
		Name:        "Leave Policies",
		Description: "Company leave policies and guidelines",
		MIMEType:    "text/plain",
	}, s.ReadPolicies)
}

// ReadEmployees serves the hr://employees resource: the full ledger snapshot
// as a JSON document.
func (s *Server) ReadEmployees(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.ledger.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding employee snapshot: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      employeesURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ReadPolicies serves the hr://leave-policies resource.
func (s *Server) ReadPolicies(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      policiesURI,
			MIMEType: "text/plain",
			Text:     leavePolicies,
		}},
	}, nil
}
