package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName     = ".wordbook"
	sessionEnv     = "WORDBOOK_SESSION"
	configFileName = "config.yaml"
	logFileName    = "wordbook.log"
)

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, appDirName), nil
}

func defaultConfigPath() (string, error) {
	dir, err := defaultDataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFileName), nil
}

// sessionID scopes favorites to the invoking shell unless WORDBOOK_SESSION
// names a session explicitly.
func sessionID() string {
	if id := strings.TrimSpace(os.Getenv(sessionEnv)); id != "" {
		return sanitizeSessionID(id)
	}
	return fmt.Sprintf("ppid-%d", os.Getppid())
}

func defaultSessionDir() string {
	base := os.Getenv("XDG_RUNTIME_DIR")
	if base == "" {
		base = os.TempDir()
	}

	return filepath.Join(base, "wordbook", "sessions", sessionID())
}

func sanitizeSessionID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
