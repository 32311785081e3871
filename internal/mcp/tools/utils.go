package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/hibob-mcp/internal/logging"
)

// respond runs one remote call and returns its result unchanged as JSON text.
// Remote failures are returned as errors so the host sees them.
func respond(log logging.Logger, tool string, call func() (any, error)) (*mcp.CallToolResult, error) {
	log = log.WithValues("tool", tool, "call_id", uuid.NewString())
	start := time.Now()
	log.Debug("calling hibob")

	value, err := call()
	if err != nil {
		log.Error(err, "hibob call failed", "elapsed", time.Since(start).String())
		return nil, err
	}
	log.Debug("hibob call succeeded", "elapsed", time.Since(start).String())

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", tool, err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// stringArgument rejects blank values but returns the value as given.
func stringArgument(args map[string]any, key string) (string, error) {
	value, _ := args[key].(string)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// objectArgument accepts a JSON object or a string holding one, since some
// hosts stringify nested arguments.
func objectArgument(args map[string]any, key string) (map[string]any, error) {
	switch v := args[key].(type) {
	case map[string]any:
		return v, nil
	case string:
		var decoded map[string]any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil || decoded == nil {
			return nil, fmt.Errorf("%s must be a JSON object", key)
		}
		return decoded, nil
	case nil:
		return nil, fmt.Errorf("%s is required", key)
	default:
		return nil, fmt.Errorf("%s must be a JSON object", key)
	}
}

// listArgument returns nil when key is absent.
func listArgument(args map[string]any, key string) ([]any, error) {
	switch v := args[key].(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var decoded []any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, fmt.Errorf("%s must be a list", key)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%s must be a list", key)
	}
}

func stringListArgument(args map[string]any, key string) ([]string, error) {
	items, err := listArgument(args, key)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a list of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}
