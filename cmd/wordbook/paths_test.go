package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeSessionID(t *testing.T) {
	tests := map[string]string{
		"abc-123_X": "abc-123_X",
		"../etc":    "___etc",
		"tty/pts 1": "tty_pts_1",
		"émoji":     "_moji",
	}

	for in, want := range tests {
		require.Equal(t, want, sanitizeSessionID(in), in)
	}
}

func TestSessionID(t *testing.T) {
	t.Setenv(sessionEnv, "  my/shell  ")
	require.Equal(t, "my_shell", sessionID())

	t.Setenv(sessionEnv, "")
	require.Equal(t, fmt.Sprintf("ppid-%d", os.Getppid()), sessionID())
}

func TestDefaultSessionDir(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtime)
	t.Setenv(sessionEnv, "abc")
	require.Equal(t, filepath.Join(runtime, "wordbook", "sessions", "abc"), defaultSessionDir())

	t.Setenv("XDG_RUNTIME_DIR", "")
	require.True(t, strings.HasPrefix(defaultSessionDir(), os.TempDir()))
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := defaultConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".wordbook", "config.yaml"), path)
}

func TestRootCommand_PrintsHelpWithoutTerminal(t *testing.T) {
	setupEnv(t)

	stdout, err := executeCommand()
	require.NoError(t, err)
	require.Contains(t, stdout, "wordbook")
	require.Contains(t, stdout, "lookup")
	require.Contains(t, stdout, "favorites")
}

func TestTUICommand_RequiresTerminal(t *testing.T) {
	env := setupEnv(t)

	_, err := env.run("tui")
	require.Error(t, err)
	require.Contains(t, err.Error(), "terminal")
}
