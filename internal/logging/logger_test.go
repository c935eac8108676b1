package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/spritenorm/internal/config"
)

func newTestLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	var out, errOut bytes.Buffer
	l.stdout, l.stderr = &out, &errOut
	return l, &out, &errOut
}

func TestLogger_Levels(t *testing.T) {
	l, out, errOut := newTestLogger(t, config.DefaultConfig())

	l.Info("renamed %s", "a.png")
	l.Warn("skipped")
	l.Error("missing directory")
	l.Debug("hidden")

	assert.Contains(t, out.String(), "[INFO] renamed a.png")
	assert.Contains(t, out.String(), "[WARN] skipped")
	assert.NotContains(t, out.String(), "missing directory")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, errOut.String(), "[ERROR] missing directory")
}

func TestLogger_DebugWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	l, out, _ := newTestLogger(t, cfg)

	l.Debug("unchanged %d", 3)
	assert.Contains(t, out.String(), "[DEBUG] unchanged 3")
}

func TestLogger_WithFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "spritenorm.log")
	l, _, _ := newTestLogger(t, cfg)

	l.SetRunID("run-1")
	l.Success("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "(run-1) [SUCCESS] to file")
}
