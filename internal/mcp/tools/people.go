package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hibob-mcp/internal/hibob"
	"github.com/roivaz/hibob-mcp/internal/logging"
)

type SearchPeopleHandler struct {
	Service PeopleService
	Log     logging.Logger
}

func (h *SearchPeopleHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	fields, err := stringListArgument(args, "fields")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filters, err := listArgument(args, "filters")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	search := hibob.SearchRequest{Fields: fields, Filters: filters}
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.SearchPeople(ctx, search)
	})
}

type EmployeeFieldsHandler struct {
	Service PeopleService
	Log     logging.Logger
}

func (h *EmployeeFieldsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.EmployeeFields(ctx)
	})
}

type UpdateEmployeeHandler struct {
	Service PeopleService
	Log     logging.Logger
}

func (h *UpdateEmployeeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	employeeID, err := stringArgument(args, "employeeId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := objectArgument(args, "fields")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.UpdateEmployee(ctx, employeeID, fields)
	})
}

type CreateEmployeeHandler struct {
	Service PeopleService
	Log     logging.Logger
}

func (h *CreateEmployeeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fields, err := objectArgument(req.GetArguments(), "fields")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return respond(h.Log, req.Params.Name, func() (any, error) {
		return h.Service.CreateEmployee(ctx, fields)
	})
}
