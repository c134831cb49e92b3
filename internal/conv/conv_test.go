package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expect      string
	}{
		{description: "string id", input: "a1", expect: "a1"},
		{description: "json decoded number", input: float64(42), expect: "42"},
		{description: "int id", input: 7, expect: "7"},
		{description: "uint64 id", input: uint64(9), expect: "9"},
		{description: "json number", input: json.Number("11"), expect: "11"},
		{description: "nil id", input: nil, expect: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, AsString(testCase.input), testCase.description)
	}
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 42, AsInt(float64(42)))
	assert.Equal(t, 7, AsInt("7"))
	assert.Equal(t, 0, AsInt(struct{}{}))
}
