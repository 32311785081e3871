package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hibob-mcp/internal/logging"
)

type TimeOffPolicyTypesHandler struct {
	Service TimeOffService
	Log     logging.Logger
}

func (h *TimeOffPolicyTypesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.TimeOffPolicyTypes(ctx)
	})
}

type SubmitTimeOffHandler struct {
	Service TimeOffService
	Log     logging.Logger
}

func (h *SubmitTimeOffHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	employeeID, err := stringArgument(args, "employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	details, err := objectArgument(args, "request_details")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.SubmitTimeOffRequest(ctx, employeeID, details)
	})
}
