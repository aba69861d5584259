package workbench

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobDefaults(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"j1","name":"train"}`))
	c := backend.client(t, "p1")

	res := c.CreateJob(context.Background(), Params{"name": "train", "script": "train.py"})
	require.True(t, res.Success)
	assert.Equal(t, "Job 'train' created successfully", res.Message)

	job, ok := res.Field("job")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"id": "j1", "name": "train"}, job)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v2/projects/p1/jobs", req.Path)
	assert.Equal(t, "python3", req.Body["kernel"])
	assert.Equal(t, float64(1), req.Body["cpu"])
	assert.Equal(t, float64(1), req.Body["memory"])
	assert.Equal(t, float64(0), req.Body["nvidia_gpu"])
	assert.Equal(t, defaultRuntimeIdentifier, req.Body["runtime_identifier"])
}

func TestCreateJobGetJobRoundTrip(t *testing.T) {
	var stored map[string]any
	backend := newFakeBackend(t, nil)
	backend.respond = func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			stored = map[string]any{"id": "j1"}
			for key, value := range backend.requests[len(backend.requests)-1].Body {
				stored[key] = value
			}
		}
		json.NewEncoder(w).Encode(stored)
	}
	c := backend.client(t, "p1")

	created := c.CreateJob(context.Background(), Params{
		"name":       "train",
		"script":     "train.py",
		"cpu":        float64(2),
		"memory":     float64(4),
		"nvidia_gpu": float64(1),
	})
	require.True(t, created.Success)

	fetched := c.GetJob(context.Background(), Params{"job_id": "j1"})
	require.True(t, fetched.Success)

	data, ok := fetched.Field("data")
	require.True(t, ok)
	job := data.(map[string]any)
	assert.Equal(t, "train", job["name"])
	assert.Equal(t, "train.py", job["script"])
	assert.Equal(t, float64(2), job["cpu"])
	assert.Equal(t, float64(4), job["memory"])
	assert.Equal(t, float64(1), job["nvidia_gpu"])
}

func TestCreateJobMissingParamsNoNetwork(t *testing.T) {
	backend := newFakeBackend(t, nil)
	c := backend.client(t, "p1")

	res := c.CreateJob(context.Background(), Params{"name": "only-name"})
	require.False(t, res.Success)
	assert.Equal(t, "Missing required parameters: script", res.Message)
	assert.Empty(t, backend.requests)
}

func TestDeleteAllJobsEmptyProject(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"jobs":[]}`))
	c := backend.client(t, "p1")

	res := c.DeleteAllJobs(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "No jobs found to delete", res.Message)

	count, ok := res.Field("deleted_count")
	require.True(t, ok)
	assert.Equal(t, 0, count)
	assert.Len(t, backend.requests, 1)
}

func TestDeleteAllJobsPartialFailure(t *testing.T) {
	backend := newFakeBackend(t, nil)
	backend.respond = func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"jobs": []map[string]any{
				{"id": "j1", "name": "alpha"},
				{"id": "j2", "name": "beta"},
			}})
		case r.URL.Path == "/api/v2/projects/p1/jobs/j2":
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"locked"}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
	c := backend.client(t, "p1")

	res := c.DeleteAllJobs(context.Background(), Params{})
	require.False(t, res.Success)
	assert.Equal(t, "Deleted 1 jobs, but failed to delete 1 jobs", res.Message)

	deleted, _ := res.Field("deleted_jobs")
	require.Len(t, deleted, 1)
	assert.Equal(t, "alpha", deleted.([]map[string]any)[0]["name"])

	failed, _ := res.Field("failed_jobs")
	require.Len(t, failed, 1)
	assert.Equal(t, "beta", failed.([]map[string]any)[0]["name"])
}

func TestDeleteAllJobsFullSuccess(t *testing.T) {
	backend := newFakeBackend(t, nil)
	backend.respond = func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"jobs":[{"id":"j1","name":"alpha"},{"id":"j2"}]}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
	c := backend.client(t, "p1")

	res := c.DeleteAllJobs(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "Successfully deleted all 2 jobs", res.Message)

	// A job with no name is reported by its ID.
	deleted, _ := res.Field("deleted_jobs")
	assert.Equal(t, "Job ID j2", deleted.([]map[string]any)[1]["name"])
}

func TestCreateJobRunOptionalBody(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"r1"}`))
	c := backend.client(t, "p1")

	res := c.CreateJobRun(context.Background(), Params{
		"job_id":                "j1",
		"environment_variables": map[string]any{"MODE": "fast"},
	})
	require.True(t, res.Success)

	req := backend.last(t)
	assert.Equal(t, "/api/v2/projects/p1/jobs/j1/runs", req.Path)
	assert.Equal(t, map[string]any{"MODE": "fast"}, req.Body["environment_variables"])
	assert.NotContains(t, req.Body, "runtime_identifier")
	assert.NotContains(t, req.Body, "override_config")
}

func TestStopJobRunUsesColonSuffix(t *testing.T) {
	backend := newFakeBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := backend.client(t, "p1")

	res := c.StopJobRun(context.Background(), Params{"job_id": "j1", "run_id": "r9"})
	require.True(t, res.Success)
	assert.Equal(t, "Job run 'r9' stopped", res.Message)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v2/projects/p1/jobs/j1/runs/r9:stop", req.Path)
}

func TestGetJobRunRequiresBothIDs(t *testing.T) {
	backend := newFakeBackend(t, nil)
	c := backend.client(t, "p1")

	res := c.GetJobRun(context.Background(), Params{"job_id": "j1"})
	require.False(t, res.Success)
	assert.Equal(t, "Missing required parameters: run_id", res.Message)
	assert.Empty(t, backend.requests)
}

func TestUpdateJobSendsOnlyProvidedFields(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"j1"}`))
	c := backend.client(t, "p1")

	res := c.UpdateJob(context.Background(), Params{"job_id": "j1", "name": "renamed"})
	require.True(t, res.Success)

	req := backend.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, map[string]any{"name": "renamed"}, req.Body)
}
