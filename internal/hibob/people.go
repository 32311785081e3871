package hibob

import (
	"context"
	"net/url"
)

// SearchRequest is the body of people/search. Empty lists are left out so the
// API applies its own defaults.
type SearchRequest struct {
	Fields  []string `json:"fields,omitempty"`
	Filters []any    `json:"filters,omitempty"`
}

func (c *Client) SearchPeople(ctx context.Context, req SearchRequest) (any, error) {
	return c.Call(ctx, "people/search", req, MethodPost)
}

// EmployeeFields returns the metadata of every employee field, including the
// field paths accepted by SearchPeople.
func (c *Client) EmployeeFields(ctx context.Context) (any, error) {
	return c.Call(ctx, "company/people/fields", nil, MethodGet)
}

// UpdateEmployee updates root-level fields of an employee record. Table fields
// can't be changed through this endpoint.
func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, fields map[string]any) (any, error) {
	return c.Call(ctx, "people/"+url.PathEscape(employeeID), fields, MethodPut)
}

func (c *Client) CreateEmployee(ctx context.Context, fields map[string]any) (any, error) {
	return c.Call(ctx, "people", fields, MethodPost)
}
