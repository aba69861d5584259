package workbench

import (
	"context"
	"net/http"
	"os"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// ListModels returns the models in the project.
func (c *Client) ListModels(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "models"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved models").With("data", data)
}

// GetModel returns one model by ID. Stays on the v1 API: the platform
// serves model detail there and v2 does not answer for it.
func (c *Client) GetModel(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v1("projects", projectID, "models", params.String("model_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved model").With("data", data)
}

// DeleteModel deletes one model.
func (c *Client) DeleteModel(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	modelID := params.String("model_id")
	if _, err := c.do(ctx, http.MethodDelete, c.v2("projects", projectID, "models", modelID), nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("Model '%s' deleted successfully", modelID).With("model_id", modelID)
}

// ListModelBuilds returns builds for one model, or every build in the
// project when model_id is absent.
func (c *Client) ListModelBuilds(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	url := c.v2("projects", projectID, "model-builds")
	if modelID := params.String("model_id"); modelID != "" {
		url = c.v2("projects", projectID, "models", modelID, "builds")
	}
	data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved model builds").With("data", data)
}

// GetModelBuild returns one build of one model.
func (c *Client) GetModelBuild(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id", "build_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v2("projects", projectID, "models", params.String("model_id"), "builds", params.String("build_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved model build").With("data", data)
}

// CreateModelBuild creates a build for a model. file_path is dual mode:
// when it names a readable local file its contents are sent in place of
// the path; otherwise the string goes through as-is and is treated as
// inline code by the platform.
func (c *Client) CreateModelBuild(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id", "file_path", "function_name"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	filePath := params.String("file_path")
	if _, statErr := os.Stat(filePath); statErr == nil {
		content, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return envelope.Failf("Failed to read file %s: %s", filePath, readErr)
		}
		filePath = string(content)
	}

	body := map[string]any{
		"function_name": params.String("function_name"),
		"file_path":     filePath,
	}
	mergeOptional(body, params,
		"kernel", "runtime_identifier", "replica_size", "cpu", "memory", "nvidia_gpu",
		"use_custom_docker_image", "custom_docker_image", "environment_variables")

	modelID := params.String("model_id")
	data, err := c.do(ctx, http.MethodPost, c.v2("projects", projectID, "models", modelID, "builds"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Successfully created build for model '%s'", modelID).With("data", data)
}

// ListModelDeployments returns deployments for one model, or every
// deployment in the project when model_id is absent.
func (c *Client) ListModelDeployments(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	url := c.v2("projects", projectID, "model-deployments")
	if modelID := params.String("model_id"); modelID != "" {
		url = c.v2("projects", projectID, "models", modelID, "deployments")
	}
	data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved model deployments").With("data", data)
}

// GetModelDeployment returns one deployment of one model. Like GetModel
// it stays on the v1 API; deployment detail is the other legacy endpoint
// the platform never migrated.
func (c *Client) GetModelDeployment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id", "deployment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v1("projects", projectID, "models", params.String("model_id"), "deployments", params.String("deployment_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved model deployment").With("data", data)
}

// CreateModelDeployment deploys a model build.
func (c *Client) CreateModelDeployment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id", "build_id", "name"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{
		"name":     params.String("name"),
		"build_id": params.String("build_id"),
	}
	mergeOptional(body, params,
		"cpu", "memory", "replica_count", "min_replica_count", "max_replica_count",
		"nvidia_gpu", "environment_variables", "enable_auth", "target_node_selector")

	modelID := params.String("model_id")
	data, err := c.do(ctx, http.MethodPost,
		c.v2("projects", projectID, "models", modelID, "deployments"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Successfully created deployment for model '%s'", modelID).With("data", data)
}

// StopModelDeployment stops a running deployment.
func (c *Client) StopModelDeployment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("model_id", "deployment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	deploymentID := params.String("deployment_id")
	url := c.v2("projects", projectID, "models", params.String("model_id"), "deployments", deploymentID) + ":stop"
	data, err := c.do(ctx, http.MethodPost, url, nil)
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Model deployment '%s' stopped", deploymentID)
	if data != nil {
		res = res.With("data", data)
	}
	return res
}
