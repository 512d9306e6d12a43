package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	entries, err := Table()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var foundRoot bool
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Target)
		if entry.Target == "/" {
			foundRoot = true
		}
	}
	assert.True(t, foundRoot, "mount table should contain the root mount")
}
