package workbench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRuntimesFormatsEntries(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"runtimes":[
		{"image_identifier":"docker.io/cloudera/jupyter:2024.10",
		 "edition":"Standard","image_type":"JupyterLab",
		 "short_description":"Python 3.10"},
		{"runtime_identifier":"docker.io/cloudera/workbench:2024.10"}
	]}`))
	c := backend.client(t, "")

	res := c.GetRuntimes(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "Found 2 available runtimes", res.Message)
	assert.Equal(t, "/api/v1/runtimes", backend.last(t).Path)

	count, ok := res.Field("count")
	require.True(t, ok)
	assert.Equal(t, 2, count)

	raw, ok := res.Field("runtimes")
	require.True(t, ok)
	runtimes := raw.([]map[string]any)
	require.Len(t, runtimes, 2)

	assert.Equal(t, map[string]any{
		"identifier":  "docker.io/cloudera/jupyter:2024.10",
		"edition":     "Standard",
		"type":        "JupyterLab",
		"description": "Python 3.10",
	}, runtimes[0])

	// image_identifier falls back to runtime_identifier; absent fields get
	// placeholder text.
	assert.Equal(t, map[string]any{
		"identifier":  "docker.io/cloudera/workbench:2024.10",
		"edition":     "Unknown",
		"type":        "Unknown",
		"description": "No description",
	}, runtimes[1])
}

func TestGetRuntimesEmptyList(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{}`))
	c := backend.client(t, "")

	res := c.GetRuntimes(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Equal(t, "Found 0 available runtimes", res.Message)

	count, _ := res.Field("count")
	assert.Equal(t, 0, count)
}
