package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandShowsHelp(t *testing.T) {
	stdout, _, err := runCLI(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "tsitool")
	for _, sub := range []string{"info", "check", "rescale", "convert"} {
		assert.Contains(t, stdout, sub)
	}
}

func TestRootCommandUnknownSubcommand(t *testing.T) {
	_, _, err := runCLI(t, "frobnicate")
	require.Error(t, err)
}
