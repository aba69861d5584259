// Package runtime assembles the MCP server: one registered tool per
// workbench operation, each converting wire arguments into client
// parameters and the client's result envelope into response text.
package runtime

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-ml/workbench-mcp-server/internal/audit"
	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
	"github.com/codex-ml/workbench-mcp-server/internal/security"
	"github.com/codex-ml/workbench-mcp-server/internal/workbench"
)

// Builder constructs an MCP server over a workbench client.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool events.
	Audit audit.Logger
	// Client performs the workbench API calls.
	Client *workbench.Client
	// Name is the advertised server name.
	Name string
	// Version is the advertised server version.
	Version string
}

// Build creates the MCP server with every workbench tool registered.
func (b Builder) Build() (*mcp.Server, error) {
	name := b.Name
	if name == "" {
		name = "workbench-mcp-server"
	}
	version := b.Version
	if version == "" {
		version = "1.0.0"
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	for _, spec := range toolSpecs() {
		b.addTool(server, spec)
	}

	return server, nil
}

func (b Builder) addTool(server *mcp.Server, spec toolSpec) {
	tool := &mcp.Tool{
		Name:        spec.name,
		Description: spec.description,
		InputSchema: spec.schema,
		Annotations: spec.annotations,
	}

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, map[string]any, error) {
		correlationID := correlationID(input)

		if b.Logger != nil {
			b.Logger.Info("tool call",
				"tool", spec.name,
				"correlation_id", correlationID,
				"args", security.RedactArguments(input),
			)
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: spec.name, CorrelationID: correlationID})
		}

		params, err := decodeArguments(input, spec)
		if err != nil {
			res := envelope.Fail(err.Error())
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "tool_error", Tool: spec.name, CorrelationID: correlationID, Detail: err.Error()})
			}
			return textResult(res), res.Fields(), nil
		}

		res := spec.call(ctx, b.Client, params)

		eventType := "tool_ok"
		if !res.Success {
			eventType = "tool_error"
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{
				Type:          eventType,
				Tool:          spec.name,
				CorrelationID: correlationID,
				ProjectID:     params.String("project_id"),
				Detail:        res.Message,
			})
		}

		return textResult(res), res.Fields(), nil
	})
}

func textResult(res envelope.Result) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: res.JSON()},
		},
	}
}

func correlationID(args map[string]any) string {
	if args != nil {
		if raw, ok := args["correlation_id"].(string); ok && raw != "" {
			return raw
		}
	}
	return uuid.NewString()
}
