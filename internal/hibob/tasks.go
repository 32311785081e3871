package hibob

import (
	"context"
	"net/url"
)

func (c *Client) EmployeeTasks(ctx context.Context, employeeID string) (any, error) {
	return c.Call(ctx, "tasks/people/"+url.PathEscape(employeeID), nil, MethodGet)
}
