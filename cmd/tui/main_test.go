package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestSetupReadsDotEnvAndLogConfig(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "tui.log")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nLOG_FILE="+logFile+"\n"), 0o644))
	chdir(t, dir)

	for _, k := range []string{"LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	std := logrus.StandardLogger()
	level, out, formatter := std.GetLevel(), std.Out, std.Formatter
	t.Cleanup(func() {
		std.SetLevel(level)
		std.SetOutput(out)
		std.SetFormatter(formatter)
	})

	cfg, err := setup("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logFile, cfg.Log.File)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("component", "tui").Debug("ready")
	raw, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ready")
}

func TestSetupRejectsBadConfig(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := setup(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
