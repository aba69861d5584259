package workbench

import (
	"context"
	"net/http"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// CreateExperiment creates a tracking experiment in the project.
func (c *Client) CreateExperiment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("name"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	name := params.String("name")
	body := map[string]any{"name": name}
	mergeOptional(body, params, "description")

	data, err := c.do(ctx, http.MethodPost, c.v2("projects", projectID, "experiments"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Experiment '%s' created successfully", name).With("data", data)
}

// ListExperiments returns the experiments in the project.
func (c *Client) ListExperiments(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "experiments"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved experiments").With("data", data)
}

// GetExperiment returns one experiment by ID.
func (c *Client) GetExperiment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v2("projects", projectID, "experiments", params.String("experiment_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved experiment").With("data", data)
}

// UpdateExperiment patches experiment name or description.
func (c *Client) UpdateExperiment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params, "name", "description")

	experimentID := params.String("experiment_id")
	data, err := c.do(ctx, http.MethodPatch, c.v2("projects", projectID, "experiments", experimentID), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Experiment '%s' updated successfully", experimentID).With("data", data)
}

// DeleteExperiment deletes one experiment.
func (c *Client) DeleteExperiment(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	experimentID := params.String("experiment_id")
	if _, err := c.do(ctx, http.MethodDelete, c.v2("projects", projectID, "experiments", experimentID), nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("Experiment '%s' deleted successfully", experimentID).
		With("experiment_id", experimentID)
}

// CreateExperimentRun creates a run under an experiment.
func (c *Client) CreateExperimentRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params, "name", "description", "metrics", "parameters", "tags")

	experimentID := params.String("experiment_id")
	data, err := c.do(ctx, http.MethodPost,
		c.v2("projects", projectID, "experiments", experimentID, "runs"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Run created for experiment '%s'", experimentID).With("data", data)
}

// GetExperimentRun returns one experiment run.
func (c *Client) GetExperimentRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id", "run_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v2("projects", projectID, "experiments", params.String("experiment_id"), "runs", params.String("run_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved experiment run").With("data", data)
}

// DeleteExperimentRun deletes one experiment run.
func (c *Client) DeleteExperimentRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id", "run_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	runID := params.String("run_id")
	if _, err := c.do(ctx, http.MethodDelete,
		c.v2("projects", projectID, "experiments", params.String("experiment_id"), "runs", runID), nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("Experiment run '%s' deleted successfully", runID).With("run_id", runID)
}

// DeleteExperimentRunBatch deletes multiple experiment runs in one call.
func (c *Client) DeleteExperimentRunBatch(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id", "run_ids"); err != nil {
		return envelope.Fail(err.Error())
	}
	runIDs := params.StringSlice("run_ids")
	if len(runIDs) == 0 {
		return envelope.Fail("run_ids must be a non-empty list of experiment run IDs")
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	experimentID := params.String("experiment_id")
	data, err := c.do(ctx, http.MethodDelete,
		c.v2("projects", projectID, "experiments", experimentID, "runs-batch"),
		map[string]any{"ids": runIDs})
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Deleted %d experiment runs", len(runIDs))
	if data != nil {
		res = res.With("data", data)
	}
	return res
}

// LogExperimentRunBatch logs metrics, parameters, and tags for multiple
// runs in one call. Each update object carries a run id plus the fields to
// log.
func (c *Client) LogExperimentRunBatch(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("experiment_id", "run_updates"); err != nil {
		return envelope.Fail(err.Error())
	}
	updates, ok := params["run_updates"].([]any)
	if !ok || len(updates) == 0 {
		return envelope.Fail("run_updates must be a non-empty list of run update objects")
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	experimentID := params.String("experiment_id")
	data, err := c.do(ctx, http.MethodPost,
		c.v2("projects", projectID, "experiments", experimentID, "run-batch"),
		map[string]any{"runs": updates})
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Logged updates for %d experiment runs", len(updates))
	if data != nil {
		res = res.With("data", data)
	}
	return res
}
