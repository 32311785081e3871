package tools

import (
	"context"

	"github.com/roivaz/hibob-mcp/internal/hibob"
)

// PeopleService covers the employee record operations.
type PeopleService interface {
	SearchPeople(ctx context.Context, req hibob.SearchRequest) (any, error)
	EmployeeFields(ctx context.Context) (any, error)
	UpdateEmployee(ctx context.Context, employeeID string, fields map[string]any) (any, error)
	CreateEmployee(ctx context.Context, fields map[string]any) (any, error)
}

type TimeOffService interface {
	TimeOffPolicyTypes(ctx context.Context) (any, error)
	SubmitTimeOffRequest(ctx context.Context, employeeID string, details map[string]any) (any, error)
}

type TaskService interface {
	EmployeeTasks(ctx context.Context, employeeID string) (any, error)
}

// HiBobService is everything the tools need from the API client.
type HiBobService interface {
	PeopleService
	TimeOffService
	TaskService
}

var _ HiBobService = (*hibob.Client)(nil)
