package workbench

import (
	"context"
	"fmt"
	"net/http"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// CreateJob creates a batch job in the project.
func (c *Client) CreateJob(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("name", "script"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	name := params.String("name")
	runtime := params.String("runtime_identifier")
	if runtime == "" {
		runtime = defaultRuntimeIdentifier
	}
	kernel := params.String("kernel")
	if kernel == "" {
		kernel = "python3"
	}

	body := map[string]any{
		"name":               name,
		"script":             params.String("script"),
		"kernel":             kernel,
		"cpu":                params.Int("cpu", 1),
		"memory":             params.Int("memory", 1),
		"nvidia_gpu":         params.Int("nvidia_gpu", 0),
		"runtime_identifier": runtime,
	}

	data, err := c.do(ctx, http.MethodPost, c.v2("projects", projectID, "jobs"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Job '%s' created successfully", name).With("job", data)
}

// ListJobs returns the jobs in the project.
func (c *Client) ListJobs(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "jobs"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved jobs").With("data", data)
}

// GetJob returns one job by ID.
func (c *Client) GetJob(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "jobs", params.String("job_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved job").With("data", data)
}

// UpdateJob patches job fields.
func (c *Client) UpdateJob(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params,
		"name", "script", "kernel", "cpu", "memory", "nvidia_gpu",
		"runtime_identifier", "environment_variables")

	jobID := params.String("job_id")
	data, err := c.do(ctx, http.MethodPatch, c.v2("projects", projectID, "jobs", jobID), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Job '%s' updated successfully", jobID).With("data", data)
}

// DeleteJob deletes one job. An empty response body is a success.
func (c *Client) DeleteJob(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	jobID := params.String("job_id")
	if _, err := c.do(ctx, http.MethodDelete, c.v2("projects", projectID, "jobs", jobID), nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("Job '%s' deleted successfully", jobID).With("job_id", jobID)
}

// DeleteAllJobs lists the project's jobs and deletes them one by one.
// Partial failure is reported, not fatal: remaining jobs are still
// attempted and per-job outcomes are aggregated.
func (c *Client) DeleteAllJobs(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "jobs"), nil)
	if err != nil {
		return failure(err)
	}
	jobs, _ := data["jobs"].([]any)
	if len(jobs) == 0 {
		return envelope.Ok("No jobs found to delete").
			With("deleted_count", 0).
			With("deleted_jobs", []any{})
	}

	var deleted []map[string]any
	var failed []map[string]any
	for _, raw := range jobs {
		job, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		jobID := Params(job).String("id")
		jobName, _ := job["name"].(string)
		if jobName == "" {
			jobName = fmt.Sprintf("Job ID %s", jobID)
		}

		if _, err := c.do(ctx, http.MethodDelete, c.v2("projects", projectID, "jobs", jobID), nil); err != nil {
			failed = append(failed, map[string]any{"id": jobID, "name": jobName, "error": err.Error()})
			continue
		}
		deleted = append(deleted, map[string]any{"id": jobID, "name": jobName})
	}

	res := envelope.Okf("Successfully deleted all %d jobs", len(deleted))
	if len(failed) > 0 {
		res = envelope.Failf("Deleted %d jobs, but failed to delete %d jobs", len(deleted), len(failed))
	}
	return res.
		With("deleted_count", len(deleted)).
		With("deleted_jobs", deleted).
		With("failed_count", len(failed)).
		With("failed_jobs", failed)
}

// CreateJobRun launches a run for an existing job.
func (c *Client) CreateJobRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	body := map[string]any{}
	mergeOptional(body, params, "runtime_identifier", "environment_variables", "override_config")

	jobID := params.String("job_id")
	data, err := c.do(ctx, http.MethodPost, c.v2("projects", projectID, "jobs", jobID, "runs"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Run created for job '%s'", jobID).With("data", data)
}

// ListJobRuns returns the runs of one job.
func (c *Client) ListJobRuns(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	jobID := params.String("job_id")
	data, err := c.do(ctx, http.MethodGet, c.v2("projects", projectID, "jobs", jobID, "runs"), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved job runs").With("data", data)
}

// GetJobRun returns one run of one job.
func (c *Client) GetJobRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id", "run_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	data, err := c.do(ctx, http.MethodGet,
		c.v2("projects", projectID, "jobs", params.String("job_id"), "runs", params.String("run_id")), nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved job run").With("data", data)
}

// StopJobRun stops a running job run.
func (c *Client) StopJobRun(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("job_id", "run_id"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}
	runID := params.String("run_id")
	url := c.v2("projects", projectID, "jobs", params.String("job_id"), "runs", runID) + ":stop"
	data, err := c.do(ctx, http.MethodPost, url, nil)
	if err != nil {
		return failure(err)
	}
	res := envelope.Okf("Job run '%s' stopped", runID)
	if data != nil {
		res = res.With("data", data)
	}
	return res
}
