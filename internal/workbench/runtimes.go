package workbench

import (
	"context"
	"net/http"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// GetRuntimes lists the ML runtimes available on the platform. Unscoped
// and pinned to the v1 API, which is where the platform serves it. The
// raw runtime entries are condensed to the fields an agent picks a
// runtime by.
func (c *Client) GetRuntimes(ctx context.Context, params Params) envelope.Result {
	data, err := c.do(ctx, http.MethodGet, c.v1("runtimes"), nil)
	if err != nil {
		return failure(err)
	}

	formatted := []map[string]any{}
	if raw, ok := data["runtimes"].([]any); ok {
		for _, item := range raw {
			runtime, ok := item.(map[string]any)
			if !ok {
				continue
			}
			identifier := runtime["image_identifier"]
			if identifier == nil || identifier == "" {
				identifier = runtime["runtime_identifier"]
			}
			formatted = append(formatted, map[string]any{
				"identifier":  identifier,
				"edition":     stringOr(runtime, "edition", "Unknown"),
				"type":        stringOr(runtime, "image_type", "Unknown"),
				"description": stringOr(runtime, "short_description", "No description"),
			})
		}
	}

	return envelope.Okf("Found %d available runtimes", len(formatted)).
		With("runtimes", formatted).
		With("count", len(formatted))
}

func stringOr(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}
