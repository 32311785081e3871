package hibob

import (
	"context"
	"net/url"
)

func (c *Client) TimeOffPolicyTypes(ctx context.Context) (any, error) {
	return c.Call(ctx, "timeoff/policy-types", nil, MethodGet)
}

// SubmitTimeOffRequest posts details unchanged; required keys depend on the
// request type and are validated by HiBob.
func (c *Client) SubmitTimeOffRequest(ctx context.Context, employeeID string, details map[string]any) (any, error) {
	return c.Call(ctx, "timeoff/employees/"+url.PathEscape(employeeID)+"/requests", details, MethodPost)
}
