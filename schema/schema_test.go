package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSchemaFor(t *testing.T) {
	type input struct {
		Command string            `json:"command"`
		Args    []string          `json:"args,omitempty"`
		Env     map[string]string `json:"env,omitempty"`
		Note    *string           `json:"note,omitempty"`
		At      time.Time         `json:"at,omitempty"`
		hidden  int
	}
	_ = input{hidden: 0}

	result, err := InputSchemaFor(&input{})
	require.NoError(t, err)
	assert.Equal(t, "object", result.Type)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	document := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &document))

	properties, ok := document["properties"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, properties, "command")
	require.Contains(t, properties, "args")
	require.Contains(t, properties, "env")
	require.Contains(t, properties, "note")
	assert.NotContains(t, properties, "hidden")

	command := properties["command"].(map[string]interface{})
	assert.Equal(t, "string", command["type"])
	args := properties["args"].(map[string]interface{})
	assert.Equal(t, "array", args["type"])
	at := properties["at"].(map[string]interface{})
	assert.Equal(t, "date-time", at["format"])

	assert.Equal(t, []interface{}{"command"}, document["required"].([]interface{}))
}

func TestInputSchemaFor_NonStruct(t *testing.T) {
	_, err := InputSchemaFor("not a struct")
	assert.Error(t, err)
}
