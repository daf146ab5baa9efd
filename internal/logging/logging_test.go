package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesSessionTaggedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartfarm.log")
	logger, err := New(Options{Path: path, Level: "info"})
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	require.True(t, strings.Contains(line, `"msg":"hello"`), line)
	require.True(t, strings.Contains(line, `"session":`), line)
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartfarm.log")
	logger, err := New(Options{Path: path, Level: "error", Verbose: true})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
