package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/mcp-protocol/schema"
)

func TestRegistry_LookupAndList(t *testing.T) {
	reg := New(schema.Tool{Name: "echo"}, schema.Tool{Name: "agent_command"})
	assert.Equal(t, 2, reg.Size())

	tool, ok := reg.Lookup("echo")
	assert.True(t, ok)
	assert.Equal(t, "echo", tool.Name)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	var names []string
	for _, tool := range reg.List() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"echo", "agent_command"}, names, "listing preserves registration order")
}

func TestRegistry_RegisterUpdatesInPlace(t *testing.T) {
	reg := New(schema.Tool{Name: "echo"})
	description := "updated"
	reg.Register(schema.Tool{Name: "echo", Description: &description})
	assert.Equal(t, 1, reg.Size())

	tool, _ := reg.Lookup("echo")
	assert.Equal(t, "updated", *tool.Description)
}

func TestRegistry_ReplaceSwapsSnapshot(t *testing.T) {
	reg := New(schema.Tool{Name: "echo"})
	reg.Replace([]schema.Tool{{Name: "unity_command"}, {Name: "screenshot"}})

	_, ok := reg.Lookup("echo")
	assert.False(t, ok)
	_, ok = reg.Lookup("unity_command")
	assert.True(t, ok)
	assert.Equal(t, 2, reg.Size())
}
