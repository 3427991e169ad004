package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRunExportWritesFallbackPosts(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "site", "posts.json")

	var stdout bytes.Buffer
	if err := runExport(context.Background(), []string{"-out", out, "-pretty"}, &stdout); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	if !strings.Contains(stdout.String(), out) {
		t.Fatalf("expected confirmation, got %q", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var posts []map[string]any
	if err := json.Unmarshal(data, &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 4 {
		t.Fatalf("expected 4 fallback posts, got %d", len(posts))
	}
}

func TestRunExportRejectsNonJSONPath(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "posts.txt")
	if err := runExport(context.Background(), []string{"-out", out}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written")
	}
}

func TestRunExportMissingConfigFile(t *testing.T) {
	isolateEnv(t)
	if err := runExport(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected missing config error")
	}
}

func TestRunExportReadsLocalDirectory(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	post := "---\ntitle: Local Post\ndate: 2024-05-01\ntags: [go]\n---\nWritten offline."
	if err := os.WriteFile(filepath.Join(dir, "local-post.md"), []byte(post), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}
	out := filepath.Join(t.TempDir(), "posts.json")

	if err := runExport(context.Background(), []string{"-dir", dir, "-out", out}, &bytes.Buffer{}); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var posts []map[string]any
	if err := json.Unmarshal(data, &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0]["title"] != "Local Post" || posts[0]["slug"] != "local-post" {
		t.Fatalf("unexpected posts %+v", posts)
	}
}
