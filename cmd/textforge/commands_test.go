package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickCommandsResolve(t *testing.T) {
	for name, fnName := range quickCommands {
		assert.True(t, functions.Has(fnName), "quick command %q points at unregistered function %q", name, fnName)
	}
}

func TestParseOptionFlags(t *testing.T) {
	opts := parseOptionFlags([]string{"shift=5", "order=desc", "broken"})
	assert.Equal(t, 5, opts["shift"])
	assert.Equal(t, "desc", opts["order"])
	assert.NotContains(t, opts, "broken")

	// Values that merely start with digits stay strings.
	opts = parseOptionFlags([]string{"key=12abc"})
	assert.Equal(t, "12abc", opts["key"])

	assert.Empty(t, parseOptionFlags(nil))
}

func TestReadInputPositional(t *testing.T) {
	input, err := readInput([]string{"ciphers", "rot13", "Hello"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello", input)
}

func TestReadInputGenerator(t *testing.T) {
	input, err := readInput([]string{"generators", "uuid-v4"}, true)
	require.NoError(t, err)
	assert.Empty(t, input)
}
