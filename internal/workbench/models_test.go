package workbench

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListModelBuildsScoping(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{}`))
	c := backend.client(t, "p1")

	// Without a model the project-level collection is used.
	res := c.ListModelBuilds(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "/api/v2/projects/p1/model-builds", backend.last(t).Path)

	// With a model the nested collection is used.
	res = c.ListModelBuilds(context.Background(), Params{"model_id": "m1"})
	require.True(t, res.Success)
	assert.Equal(t, "/api/v2/projects/p1/models/m1/builds", backend.last(t).Path)
}

func TestListModelDeploymentsScoping(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{}`))
	c := backend.client(t, "p1")

	res := c.ListModelDeployments(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "/api/v2/projects/p1/model-deployments", backend.last(t).Path)

	res = c.ListModelDeployments(context.Background(), Params{"model_id": "m1"})
	require.True(t, res.Success)
	assert.Equal(t, "/api/v2/projects/p1/models/m1/deployments", backend.last(t).Path)
}

func TestCreateModelBuildReadsLocalFile(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"b1"}`))
	c := backend.client(t, "p1")

	script := filepath.Join(t.TempDir(), "predict.py")
	require.NoError(t, os.WriteFile(script, []byte("def predict(args):\n    return args\n"), 0o644))

	res := c.CreateModelBuild(context.Background(), Params{
		"model_id":      "m1",
		"file_path":     script,
		"function_name": "predict",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Successfully created build for model 'm1'", res.Message)

	req := backend.last(t)
	assert.Equal(t, "/api/v2/projects/p1/models/m1/builds", req.Path)
	assert.Equal(t, "predict", req.Body["function_name"])
	assert.Equal(t, "def predict(args):\n    return args\n", req.Body["file_path"])
}

func TestCreateModelBuildPassesThroughNonLocalPath(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"b1"}`))
	c := backend.client(t, "p1")

	res := c.CreateModelBuild(context.Background(), Params{
		"model_id":      "m1",
		"file_path":     "models/predict.py",
		"function_name": "predict",
	})
	require.True(t, res.Success)
	assert.Equal(t, "models/predict.py", backend.last(t).Body["file_path"])
}

func TestCreateModelDeploymentBody(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"id":"d1"}`))
	c := backend.client(t, "p1")

	res := c.CreateModelDeployment(context.Background(), Params{
		"model_id":      "m1",
		"build_id":      "b1",
		"name":          "serving",
		"replica_count": float64(2),
		"enable_auth":   true,
	})
	require.True(t, res.Success)
	assert.Equal(t, "Successfully created deployment for model 'm1'", res.Message)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v2/projects/p1/models/m1/deployments", req.Path)
	assert.Equal(t, "serving", req.Body["name"])
	assert.Equal(t, "b1", req.Body["build_id"])
	assert.Equal(t, float64(2), req.Body["replica_count"])
	assert.Equal(t, true, req.Body["enable_auth"])
	assert.NotContains(t, req.Body, "nvidia_gpu")
}

func TestStopModelDeploymentUsesColonSuffix(t *testing.T) {
	backend := newFakeBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := backend.client(t, "p1")

	res := c.StopModelDeployment(context.Background(), Params{"model_id": "m1", "deployment_id": "d1"})
	require.True(t, res.Success)
	assert.Equal(t, "Model deployment 'd1' stopped", res.Message)
	assert.Equal(t, "/api/v2/projects/p1/models/m1/deployments/d1:stop", backend.last(t).Path)
}
