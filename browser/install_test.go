package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExecPath_WithoutInstall(t *testing.T) {
	path, err := ResolveExecPath(true, "/usr/bin/chromium")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/chromium", path)

	path, err = ResolveExecPath(false, "")
	require.NoError(t, err)
	assert.Empty(t, path)
}
