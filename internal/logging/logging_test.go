package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerCreatesLogFile(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "logs", "bindle.log")

	logger, err := NewLogger(logfile, false)
	require.NoError(t, err)

	logger.Info("provisioned", "rootfs", "/run/bindle/c1/rootfs")

	contents, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "provisioned")
	assert.Contains(t, string(contents), "/run/bindle/c1/rootfs")
}

func TestNewLoggerDebugLevel(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "bindle.log")

	logger, err := NewLogger(logfile, true)
	require.NoError(t, err)

	logger.Debug("mount table scanned")

	contents, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "mount table scanned")
}

func TestErrorWriter(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "bindle.log")

	logger, err := NewLogger(logfile, false)
	require.NoError(t, err)

	n, err := NewErrorWriter(logger).Write([]byte("something broke\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	contents, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "something broke")
}
