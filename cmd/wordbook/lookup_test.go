package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
)

func TestLookupCommand_RendersAudio(t *testing.T) {
	env := setupEnv(t)

	stdout, err := env.run("lookup", "kitten")
	require.NoError(t, err)
	require.Contains(t, stdout, "kitten")
	require.Contains(t, stdout, "Phonetic:")
	require.Equal(t, 1, strings.Count(stdout, "Audio:"))
	require.Contains(t, stdout, "Definition:")
	require.Contains(t, stdout, "Example:")
	require.EqualValues(t, 1, env.calls.Load())
}

func TestLookupCommand_NoPhonetics(t *testing.T) {
	env := setupEnv(t)

	stdout, err := env.run("lookup", "latino")
	require.NoError(t, err)
	require.Contains(t, stdout, "latino")
	require.NotContains(t, stdout, "Audio:")
	require.NotContains(t, stdout, "Phonetic:")
}

func TestLookupCommand_JSONOutput(t *testing.T) {
	env := setupEnv(t)

	stdout, err := env.run("lookup", "kitten", "--json")
	require.NoError(t, err)

	var entries []dictionary.WordEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "https://example.com/kitten-us.mp3", entries[0].AudioURL())
}

func TestLookupCommand_NotFound(t *testing.T) {
	env := setupEnv(t)

	stdout, err := env.run("lookup", "qwertyuiop")
	require.NoError(t, err)
	require.Contains(t, stdout, "No Definitions Found")
	require.Contains(t, stdout, "head to the web instead")
}

func TestLookupCommand_BlankWord(t *testing.T) {
	env := setupEnv(t)

	_, err := env.run("lookup", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Please enter a word")
	require.Zero(t, env.calls.Load())
}

func TestLookupCommand_ServiceError(t *testing.T) {
	env := setupEnv(t)

	_, err := env.run("lookup", "broken")
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))

	var statusErr *dictionary.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, 500, statusErr.Status)
}

func TestLookupCommand_WritesSessionLog(t *testing.T) {
	env := setupEnv(t)

	_, err := env.run("lookup", "qwertyuiop")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.sessionDir("test-session"), logFileName))
	require.NoError(t, err)
	require.Contains(t, string(data), "dictionary response")
	require.Contains(t, string(data), "No Definitions Found")
	require.Contains(t, string(data), "correlation_id")
}

func TestLookupCommand_VerboseLogsToStderr(t *testing.T) {
	env := setupEnv(t)

	stdout, err := env.run("--verbose", "lookup", "kitten")
	require.NoError(t, err)
	require.Contains(t, stdout, "dictionary response")
}

func TestLookupCommand_ConfigFile(t *testing.T) {
	env := setupEnv(t)

	dir := filepath.Join(env.home, appDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	contents := "service:\n  base_url: \"" + env.serviceURL + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(contents), 0o600))

	stdout, err := executeCommand("lookup", "kitten")
	require.NoError(t, err)
	require.Contains(t, stdout, "A young cat.")
}

func TestLookupCommand_InvalidConfig(t *testing.T) {
	env := setupEnv(t)

	path := filepath.Join(env.home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  base_url: \"ftp://nope\"\n"), 0o600))

	_, err := executeCommand("--config", path, "lookup", "kitten")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading configuration")
	require.Zero(t, env.calls.Load())
}
