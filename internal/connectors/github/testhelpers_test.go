package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// mockTokenProvider implements driven.TokenProvider for testing.
type mockTokenProvider struct {
	token string
	err   error
}

func (p *mockTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

func (p *mockTokenProvider) Source() string {
	return "test"
}

func (p *mockTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

// fakeGitHub serves a small repository octo/demo:
//
//	README.md
//	src/main.go
//	link -> README.md (symlink)
type fakeGitHub struct {
	t         *testing.T
	authSeen  []string
	overrides map[string]func(w http.ResponseWriter)
}

func newFakeGitHub(t *testing.T) (*fakeGitHub, *httptest.Server) {
	f := &fakeGitHub{t: t, overrides: make(map[string]func(w http.ResponseWriter))}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	f.authSeen = append(f.authSeen, r.Header.Get("Authorization"))
	w.Header().Set("X-RateLimit-Limit", "5000")
	w.Header().Set("X-RateLimit-Remaining", "4999")

	if override, ok := f.overrides[r.URL.Path]; ok {
		override(w)
		return
	}

	switch r.URL.Path {
	case "/repos/octo/demo":
		writeJSON(w, map[string]any{
			"name":              "demo",
			"full_name":         "octo/demo",
			"description":       "A demo repository",
			"language":          "Go",
			"stargazers_count":  42,
			"forks_count":       7,
			"open_issues_count": 3,
			"default_branch":    "main",
			"html_url":          "https://github.com/octo/demo",
			"license":           map[string]any{"key": "mit", "name": "MIT License"},
			"topics":            []string{"cli", "docs"},
		})
	case "/repos/octo/demo/contents/":
		writeJSON(w, []map[string]any{
			{"type": "file", "path": "README.md", "name": "README.md", "size": 6},
			{"type": "dir", "path": "src", "name": "src", "size": 0},
			{"type": "symlink", "path": "link", "name": "link", "size": 9},
		})
	case "/repos/octo/demo/contents/src":
		writeJSON(w, []map[string]any{
			{"type": "file", "path": "src/main.go", "name": "main.go", "size": 12},
		})
	case "/repos/octo/demo/contents/README.md":
		writeJSON(w, fileContent("README.md", "# demo"))
	case "/repos/octo/demo/contents/src/main.go":
		writeJSON(w, fileContent("src/main.go", "package main"))
	case "/user":
		writeJSON(w, map[string]any{"login": "octocat"})
	default:
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"message": "Not Found"})
	}
}

func fileContent(path, content string) map[string]any {
	return map[string]any{
		"type":     "file",
		"path":     path,
		"size":     len(content),
		"encoding": "base64",
		"content":  base64.StdEncoding.EncodeToString([]byte(content)),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	_ = json.NewEncoder(w).Encode(v)
}

// newTestClient returns a client pointed at srv with throttling disabled.
func newTestClient(srv *httptest.Server, tp *mockTokenProvider) *Client {
	return NewClient(tp, Config{BaseURL: srv.URL})
}

var demoRef = domain.RepoRef{Owner: "octo", Name: "demo"}
