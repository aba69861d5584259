package workbench

import (
	"context"
	"net/http"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// ListProjects returns all projects visible to the API key.
func (c *Client) ListProjects(ctx context.Context, params Params) envelope.Result {
	data, err := c.do(ctx, http.MethodGet, c.v2("projects"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved projects").With("data", data)
}

// GetProjectID resolves a project name to its ID. The name "*" lists every
// project instead.
func (c *Client) GetProjectID(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("project_name"); err != nil {
		return envelope.Fail(err.Error())
	}
	name := params.String("project_name")

	data, err := c.do(ctx, http.MethodGet, c.v2("projects"), nil)
	if err != nil {
		return failure(err)
	}

	projects, _ := data["projects"].([]any)
	if name == "*" {
		listed := make([]map[string]any, 0, len(projects))
		for _, raw := range projects {
			project, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			listed = append(listed, map[string]any{
				"name":  project["name"],
				"id":    project["id"],
				"owner": project["owner"],
			})
		}
		if len(listed) == 0 {
			return envelope.Fail("No projects found or you don't have permission to access them").
				With("raw_response", data)
		}
		return envelope.Okf("Found %d projects", len(listed)).
			With("projects", listed).
			With("count", len(listed))
	}

	for _, raw := range projects {
		project, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if projectName, _ := project["name"].(string); projectName == name {
			return envelope.Okf("Found project '%s'", name).
				With("project_id", project["id"]).
				With("project_name", name).
				With("project_info", project)
		}
	}

	return envelope.Failf("No project found with name: %s", name)
}

// BatchListProjects returns the projects matching a list of project IDs.
// The registry argument is project_ids; the API body field is ids.
func (c *Client) BatchListProjects(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("project_ids"); err != nil {
		return envelope.Fail(err.Error())
	}
	ids := params.StringSlice("project_ids")
	if len(ids) == 0 {
		return envelope.Fail("Parameter 'project_ids' must be a list of project IDs")
	}

	data, err := c.do(ctx, http.MethodPost, c.v2("projects", "batchList"), map[string]any{"ids": ids})
	if err != nil {
		return failure(err)
	}
	count := 0
	if projects, ok := data["projects"].([]any); ok {
		count = len(projects)
	}
	return envelope.Okf("Successfully retrieved %d projects", count).With("data", data)
}

// UpdateProject patches project fields.
func (c *Client) UpdateProject(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params, "name", "summary", "template", "public", "disable_git_repo")

	data, err := c.do(ctx, http.MethodPatch, c.v2("projects", projectID), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Project '%s' updated successfully", projectID).With("data", data)
}
