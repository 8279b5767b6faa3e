package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	version, commit, date = "1.2.3", "abc123", "2025-01-02"
	t.Cleanup(func() {
		version, commit, date = oldVersion, oldCommit, oldDate
	})

	cmd := newVersionCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	require.Contains(t, out, "wordbook 1.2.3")
	require.Contains(t, out, "commit: abc123")
	require.Contains(t, out, "built: 2025-01-02")
	require.Contains(t, out, "go: go")
	require.Contains(t, out, "platform: ")
}
