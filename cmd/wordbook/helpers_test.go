package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
)

const kittenBody = `[{
	"word": "kitten",
	"phonetic": "/ˈkɪtən/",
	"phonetics": [{"text": "/ˈkɪtən/", "audio": "https://example.com/kitten-us.mp3"}],
	"meanings": [{
		"partOfSpeech": "noun",
		"definitions": [{"definition": "A young cat.", "example": "The kitten purred.", "synonyms": [], "antonyms": []}]
	}]
}]`

const latinoBody = `[{
	"word": "latino",
	"phonetics": [],
	"meanings": [{
		"partOfSpeech": "noun",
		"definitions": [{"definition": "A person of Latin American origin.", "synonyms": [], "antonyms": []}]
	}]
}]`

const notFoundBody = `{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`

type testEnv struct {
	home       string
	runtime    string
	serviceURL string
	calls      atomic.Int32
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{home: t.TempDir(), runtime: t.TempDir()}
	t.Setenv("HOME", env.home)
	t.Setenv("XDG_RUNTIME_DIR", env.runtime)
	t.Setenv(sessionEnv, "test-session")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.calls.Add(1)
		switch r.URL.Path {
		case "/kitten":
			w.Write([]byte(kittenBody))
		case "/latino":
			w.Write([]byte(latinoBody))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(notFoundBody))
		}
	}))
	t.Cleanup(srv.Close)
	env.serviceURL = srv.URL

	return env
}

func (e *testEnv) sessionDir(id string) string {
	return filepath.Join(e.runtime, "wordbook", "sessions", id)
}

// run executes the root command against the fake service.
func (e *testEnv) run(args ...string) (string, error) {
	return executeCommand(append([]string{"--service-url", e.serviceURL}, args...)...)
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetIn(&bytes.Buffer{})
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
