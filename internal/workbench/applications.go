package workbench

import (
	"context"
	"net/http"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// CreateApplication creates a long-running application in the project.
func (c *Client) CreateApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("name", "script"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	name := params.String("name")
	body := map[string]any{
		"name":       name,
		"script":     params.String("script"),
		"cpu":        params.Int("cpu", 1),
		"memory":     params.Int("memory", 1),
		"nvidia_gpu": params.Int("nvidia_gpu", 0),
	}
	mergeOptional(body, params,
		"subdomain", "description", "runtime_identifier", "environment_variables",
		"bypass_authentication")

	data, err := c.do(ctx, http.MethodPost, c.v2("projects", projectID, "applications"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Application '%s' created successfully", name).With("data", data)
}

// ListApplications returns the applications in the project.
func (c *Client) ListApplications(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "applications"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved applications").With("data", data)
}

// GetApplication returns one application by ID.
func (c *Client) GetApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("application_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v2("projects", projectID, "applications", params.String("application_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved application").With("data", data)
}

// UpdateApplication patches application fields.
func (c *Client) UpdateApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("application_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params,
		"name", "description", "cpu", "memory", "nvidia_gpu",
		"environment_variables", "runtime_identifier")

	applicationID := params.String("application_id")
	data, err := c.do(ctx, http.MethodPatch,
		c.v2("projects", projectID, "applications", applicationID), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Application '%s' updated successfully", applicationID).With("data", data)
}

// DeleteApplication deletes one application.
func (c *Client) DeleteApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("application_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	applicationID := params.String("application_id")
	if _, err := c.do(ctx, http.MethodDelete,
		c.v2("projects", projectID, "applications", applicationID), nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("Application '%s' deleted successfully", applicationID).
		With("application_id", applicationID)
}

// RestartApplication restarts a running application.
func (c *Client) RestartApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("application_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	applicationID := params.String("application_id")
	data, err := c.do(ctx, http.MethodPost,
		c.v2("projects", projectID, "applications", applicationID, "restart"), nil)
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Application '%s' restarted", applicationID)
	if data != nil {
		res = res.With("data", data)
	}
	return res
}

// StopApplication stops a running application.
func (c *Client) StopApplication(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("application_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	applicationID := params.String("application_id")
	url := c.v2("projects", projectID, "applications", applicationID) + ":stop"
	data, err := c.do(ctx, http.MethodPost, url, nil)
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Application '%s' stopped", applicationID)
	if data != nil {
		res = res.With("data", data)
	}
	return res
}
