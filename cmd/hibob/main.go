package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/hibob-mcp/internal/config"
	"github.com/roivaz/hibob-mcp/internal/hibob"
)

func main() {
	root := newRootCommand(func() (*hibob.Client, error) {
		return hibob.NewClient(config.HiBob())
	})
	config.Init(root)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hibob: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(newClient func() (*hibob.Client, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "hibob",
		Short:         "Call the HiBob API operations exposed by hibob-mcp",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("hibob-api-token", "", "HiBob service user token (default $HIBOB_API_TOKEN)")
	root.PersistentFlags().String("hibob-base-url", "", "HiBob API base URL")
	root.PersistentFlags().StringP("output", "o", "json", "Output format: json or yaml")

	// withClient runs fn against a fresh client and prints its result.
	withClient := func(fn func(ctx context.Context, c *hibob.Client) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			value, err := fn(cmd.Context(), client)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("output")
			return render(cmd.OutOrStdout(), value, format)
		}
	}

	var (
		fields  []string
		filters string
		data    string
	)

	search := &cobra.Command{
		Use:   "search",
		Short: "Search employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := hibob.SearchRequest{Fields: fields}
			if filters != "" {
				list, err := parseList(filters)
				if err != nil {
					return fmt.Errorf("--filters: %w", err)
				}
				req.Filters = list
			}
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.SearchPeople(ctx, req)
			})(cmd, args)
		},
	}
	search.Flags().StringSliceVar(&fields, "field", nil, "Field path to return (repeatable)")
	search.Flags().StringVar(&filters, "filters", "", `Filters as JSON, e.g. '[{"fieldPath":"root.email","operator":"equals","values":["jane@example.com"]}]'`)

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "List employee field metadata",
		Args:  cobra.NoArgs,
		RunE: withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
			return c.EmployeeFields(ctx)
		}),
	}

	update := &cobra.Command{
		Use:   "update <employee-id>",
		Short: "Update fields of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseObject(data)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.UpdateEmployee(ctx, args[0], body)
			})(cmd, args)
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseObject(data)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.CreateEmployee(ctx, body)
			})(cmd, args)
		},
	}

	policyTypes := &cobra.Command{
		Use:   "policy-types",
		Short: "List time off policy types",
		Args:  cobra.NoArgs,
		RunE: withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
			return c.TimeOffPolicyTypes(ctx)
		}),
	}

	timeOff := &cobra.Command{
		Use:   "timeoff-request <employee-id>",
		Short: "Submit a time off request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseObject(data)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.SubmitTimeOffRequest(ctx, args[0], body)
			})(cmd, args)
		},
	}

	tasks := &cobra.Command{
		Use:   "tasks <employee-id>",
		Short: "List tasks of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.EmployeeTasks(ctx, args[0])
			})(cmd, args)
		},
	}

	call := &cobra.Command{
		Use:   "call <method> <endpoint>",
		Short: "Issue a raw request against the API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := hibob.ParseMethod(args[0])
			if err != nil {
				return err
			}
			var body any
			if data != "" {
				if body, err = parseObject(data); err != nil {
					return fmt.Errorf("--data: %w", err)
				}
			}
			return withClient(func(ctx context.Context, c *hibob.Client) (any, error) {
				return c.Call(ctx, args[1], body, method)
			})(cmd, args)
		},
	}

	for _, c := range []*cobra.Command{update, create, timeOff, call} {
		c.Flags().StringVarP(&data, "data", "d", "", "Request body as a JSON object")
	}
	for _, c := range []*cobra.Command{update, create, timeOff} {
		_ = c.MarkFlagRequired("data")
	}

	root.AddCommand(search, fieldsCmd, update, create, policyTypes, timeOff, tasks, call)
	return root
}
