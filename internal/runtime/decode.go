package runtime

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codex-ml/workbench-mcp-server/internal/workbench"
)

// decodeArguments converts the wire-level scalar arguments into the
// parameter mapping the client expects. Nested structures arrive as
// JSON-encoded strings and lists as comma-separated strings, because the
// calling protocol only passes primitives.
func decodeArguments(input map[string]any, spec toolSpec) (workbench.Params, error) {
	params := make(workbench.Params, len(input))
	for key, value := range input {
		params[key] = value
	}

	for _, field := range spec.jsonArgs {
		raw, ok := params[field].(string)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			return nil, fmt.Errorf("Invalid JSON for %s", field)
		}
		params[field] = decoded
	}

	for _, field := range spec.listArgs {
		raw, ok := params[field].(string)
		if !ok {
			continue
		}
		params[field] = splitList(raw)
	}

	return params, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
