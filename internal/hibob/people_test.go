package hibob

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations_Routing(t *testing.T) {
	ctx := context.Background()
	fields := map[string]any{"root.firstName": "Jane"}

	cases := []struct {
		name       string
		call       func(*Client) (any, error)
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name:       "search without fields",
			call:       func(c *Client) (any, error) { return c.SearchPeople(ctx, SearchRequest{Filters: []any{map[string]any{"fieldPath": "root.email", "operator": "equals", "values": []any{"a@b.com"}}}}) },
			wantMethod: http.MethodPost,
			wantPath:   "/v1/people/search",
			wantBody:   `{"filters":[{"fieldPath":"root.email","operator":"equals","values":["a@b.com"]}]}`,
		},
		{
			name:       "search empty",
			call:       func(c *Client) (any, error) { return c.SearchPeople(ctx, SearchRequest{Fields: []string{}}) },
			wantMethod: http.MethodPost,
			wantPath:   "/v1/people/search",
			wantBody:   `{}`,
		},
		{
			name:       "employee fields",
			call:       func(c *Client) (any, error) { return c.EmployeeFields(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/v1/company/people/fields",
		},
		{
			name:       "update employee",
			call:       func(c *Client) (any, error) { return c.UpdateEmployee(ctx, "E1", fields) },
			wantMethod: http.MethodPut,
			wantPath:   "/v1/people/E1",
			wantBody:   `{"root.firstName":"Jane"}`,
		},
		{
			name:       "create employee",
			call:       func(c *Client) (any, error) { return c.CreateEmployee(ctx, fields) },
			wantMethod: http.MethodPost,
			wantPath:   "/v1/people",
			wantBody:   `{"root.firstName":"Jane"}`,
		},
		{
			name:       "policy types",
			call:       func(c *Client) (any, error) { return c.TimeOffPolicyTypes(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/v1/timeoff/policy-types",
		},
		{
			name:       "submit time off",
			call:       func(c *Client) (any, error) { return c.SubmitTimeOffRequest(ctx, "E2", map[string]any{"type": "Holiday"}) },
			wantMethod: http.MethodPost,
			wantPath:   "/v1/timeoff/employees/E2/requests",
			wantBody:   `{"type":"Holiday"}`,
		},
		{
			name:       "employee tasks",
			call:       func(c *Client) (any, error) { return c.EmployeeTasks(ctx, "E3") },
			wantMethod: http.MethodGet,
			wantPath:   "/v1/tasks/people/E3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api, srv := newFakeAPI(t, http.StatusOK, `{"ok":true}`)
			client := newTestClient(t, srv, "t")

			_, err := tc.call(client)
			require.NoError(t, err)

			calls := api.requests()
			require.Len(t, calls, 1)
			assert.Equal(t, tc.wantMethod, calls[0].Method)
			assert.Equal(t, tc.wantPath, calls[0].Path)
			if tc.wantBody == "" {
				assert.Empty(t, calls[0].Body)
			} else {
				assert.JSONEq(t, tc.wantBody, string(calls[0].Body))
			}
		})
	}
}

func TestOperations_EscapesEmployeeID(t *testing.T) {
	api, srv := newFakeAPI(t, http.StatusOK, `[]`)
	client := newTestClient(t, srv, "t")

	_, err := client.EmployeeTasks(context.Background(), "a/b")
	require.NoError(t, err)

	calls := api.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, "/v1/tasks/people/a%2Fb", calls[0].EscapedPath)
}
