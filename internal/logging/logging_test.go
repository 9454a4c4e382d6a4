package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	assert.Equal(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rnav.log")
	logger, closeFn, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.WithField("path", "/home/user").Info("hidden below warn")
	logger.WithField("path", "/home/user").Warn("listing failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "listing failed")
	assert.Contains(t, out, "path=/home/user")
	assert.NotContains(t, out, "hidden below warn")
}

func TestDebugOverridesLevel(t *testing.T) {
	logger, _, err := New(Options{Level: "error", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestInvalidLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
