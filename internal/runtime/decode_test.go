package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgumentsJSONFields(t *testing.T) {
	spec := toolSpec{jsonArgs: []string{"environment_variables"}}

	params, err := decodeArguments(map[string]any{
		"name":                  "job",
		"environment_variables": `{"MODE":"fast","N":2}`,
	}, spec)
	require.NoError(t, err)

	assert.Equal(t, "job", params["name"])
	assert.Equal(t, map[string]any{"MODE": "fast", "N": float64(2)}, params["environment_variables"])
}

func TestDecodeArgumentsInvalidJSON(t *testing.T) {
	spec := toolSpec{jsonArgs: []string{"environment_variables"}}

	_, err := decodeArguments(map[string]any{
		"environment_variables": "{not json",
	}, spec)
	assert.EqualError(t, err, "Invalid JSON for environment_variables")
}

func TestDecodeArgumentsSkipsAbsentJSONFields(t *testing.T) {
	spec := toolSpec{jsonArgs: []string{"metrics", "parameters"}}

	params, err := decodeArguments(map[string]any{"metrics": "  "}, spec)
	require.NoError(t, err)
	assert.Equal(t, "  ", params["metrics"])
	assert.NotContains(t, params, "parameters")
}

func TestDecodeArgumentsListFields(t *testing.T) {
	spec := toolSpec{listArgs: []string{"run_ids"}}

	params, err := decodeArguments(map[string]any{
		"run_ids": "r1, r2 ,,r3 ",
	}, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3"}, params["run_ids"])
}

func TestDecodeArgumentsDoesNotMutateInput(t *testing.T) {
	spec := toolSpec{listArgs: []string{"ids"}}
	input := map[string]any{"ids": "a,b"}

	_, err := decodeArguments(input, spec)
	require.NoError(t, err)
	assert.Equal(t, "a,b", input["ids"])
}
