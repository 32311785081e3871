package mcp

import (
	"context"
	"io"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ToolPeopleSearch       = "hibob_people_search"
	ToolEmployeeFields     = "hibob_get_employee_fields"
	ToolUpdateEmployee     = "hibob_update_employee"
	ToolTimeOffPolicyTypes = "hibob_get_timeoff_policy_types"
	ToolSubmitTimeOff      = "hibob_submit_timeoff_request"
	ToolCreateEmployee     = "hibob_create_employee"
	ToolEmployeeTasks      = "hibob_get_employee_tasks"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	// Handler serves the MCP endpoint and, when a registry is configured, /metrics.
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"hibob-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	endpoint := cfg.EndpointPath
	if endpoint == "" {
		endpoint = "/mcp"
	}
	mux := http.NewServeMux()
	mux.Handle(endpoint, httpServer)
	if cfg.Registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
	}
}

// ServeStdio speaks MCP over the given streams until in is exhausted or ctx
// is cancelled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.MCP).Listen(ctx, in, out)
}

func toolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		ToolPeopleSearch: mcp.NewTool(ToolPeopleSearch,
			mcp.WithDescription("Search for employees in HiBob using advanced filters. "+
				"Filter by ID with fieldPath \"root.id\" or by email with fieldPath \"root.email\", operator \"equals\". "+
				"To find an employee by name, search with no filters and match the name yourself. "+
				"Use hibob_get_employee_fields to discover available field paths."),
			mcp.WithArray("fields",
				mcp.Description("Optional: field paths to return for each employee (e.g. [\"root.id\", \"root.email\"])"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("filters",
				mcp.Description("Optional: filters such as [{\"fieldPath\": \"root.email\", \"operator\": \"equals\", \"values\": [\"jane@example.com\"]}]"),
				mcp.Items(map[string]any{
					"type": "object",
					"properties": map[string]any{
						"fieldPath": map[string]any{"type": "string"},
						"operator":  map[string]any{"type": "string"},
						"values":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
				}),
			),
		),
		ToolEmployeeFields: mcp.NewTool(ToolEmployeeFields,
			mcp.WithDescription("Get metadata about all employee fields from HiBob. "+
				"Use it to discover field paths for hibob_people_search, hibob_update_employee and hibob_create_employee."),
		),
		ToolUpdateEmployee: mcp.NewTool(ToolUpdateEmployee,
			mcp.WithDescription("Update specific fields in an employee's record in HiBob. "+
				"Only employee fields are supported; table updates are not allowed through this endpoint."),
			mcp.WithString("employeeId",
				mcp.Required(),
				mcp.Description("The HiBob employee ID"),
			),
			mcp.WithObject("fields",
				mcp.Required(),
				mcp.Description("Field path to new value, e.g. {\"root.firstName\": \"NewName\"}"),
			),
		),
		ToolTimeOffPolicyTypes: mcp.NewTool(ToolTimeOffPolicyTypes,
			mcp.WithDescription("Get the list of all time off policy type names from HiBob."),
		),
		ToolSubmitTimeOff: mcp.NewTool(ToolSubmitTimeOff,
			mcp.WithDescription("Submit a new time off request for an employee in HiBob. "+
				"A Holiday request typically needs policyType, startDate and endDate (YYYY-MM-DD), "+
				"requestRangeType \"days\", startDatePortion and endDatePortion \"all_day\"; "+
				"reason, comment, halfDay and reasonCode are optional."),
			mcp.WithString("employee_id",
				mcp.Required(),
				mcp.Description("The HiBob employee ID"),
			),
			mcp.WithObject("request_details",
				mcp.Required(),
				mcp.Description("Request body as required by the HiBob time off API for the request type"),
			),
		),
		ToolCreateEmployee: mcp.NewTool(ToolCreateEmployee,
			mcp.WithDescription("Create a new employee record in HiBob. "+
				"Only fields listed by hibob_get_employee_fields are allowed; site and startDate are mandatory."),
			mcp.WithObject("fields",
				mcp.Required(),
				mcp.Description("Employee fields, e.g. {\"root.firstName\": \"Jane\", \"root.surname\": \"Doe\", \"root.email\": \"jane.doe@example.com\"}"),
			),
		),
		ToolEmployeeTasks: mcp.NewTool(ToolEmployeeTasks,
			mcp.WithDescription("Get all tasks for a specific employee in HiBob."),
			mcp.WithString("employee_id",
				mcp.Required(),
				mcp.Description("The HiBob employee ID"),
			),
		),
	}
}
