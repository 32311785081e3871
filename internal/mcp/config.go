package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/roivaz/hibob-mcp/internal/config"
	"github.com/roivaz/hibob-mcp/internal/hibob"
	"github.com/roivaz/hibob-mcp/internal/logging"
	"github.com/roivaz/hibob-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	EndpointPath string
	Registry     *prometheus.Registry
}

// DefaultConfig wires every tool to one HiBob client built from the values
// resolved by config.Init.
func DefaultConfig(log logging.Logger) (Config, error) {
	registry := prometheus.NewRegistry()
	metrics, err := hibob.NewMetrics(registry)
	if err != nil {
		return Config{}, fmt.Errorf("init metrics: %w", err)
	}

	client, err := hibob.NewClient(config.HiBob(), hibob.WithMetrics(metrics))
	if err != nil {
		return Config{}, fmt.Errorf("init hibob client: %w", err)
	}

	cfg := NewConfig(client, log)
	cfg.EndpointPath = config.EndpointPath()
	cfg.Options = []server.StreamableHTTPOption{
		server.WithEndpointPath(cfg.EndpointPath),
		server.WithStateLess(true),
	}
	cfg.Registry = registry
	return cfg, nil
}

// NewConfig registers the full tool set against service.
func NewConfig(service tools.HiBobService, log logging.Logger) Config {
	log = log.WithName("tools")
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			ToolPeopleSearch:       &tools.SearchPeopleHandler{Service: service, Log: log},
			ToolEmployeeFields:     &tools.EmployeeFieldsHandler{Service: service, Log: log},
			ToolUpdateEmployee:     &tools.UpdateEmployeeHandler{Service: service, Log: log},
			ToolTimeOffPolicyTypes: &tools.TimeOffPolicyTypesHandler{Service: service, Log: log},
			ToolSubmitTimeOff:      &tools.SubmitTimeOffHandler{Service: service, Log: log},
			ToolCreateEmployee:     &tools.CreateEmployeeHandler{Service: service, Log: log},
			ToolEmployeeTasks:      &tools.EmployeeTasksHandler{Service: service, Log: log},
		},
		EndpointPath: "/mcp",
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
	}
}
