package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hibob-mcp/internal/logging"
)

type EmployeeTasksHandler struct {
	Service TaskService
	Log     logging.Logger
}

func (h *EmployeeTasksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := stringArgument(req.GetArguments(), "employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.EmployeeTasks(ctx, employeeID)
	})
}
