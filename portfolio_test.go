package portfolio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bonsa9/portfolio"
	"github.com/bonsa9/portfolio/internal/logging/console"
)

func quietProvider(buf *bytes.Buffer) portfolio.Option {
	return portfolio.WithLoggerProvider(console.NewProvider(console.Options{Writer: buf}))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := portfolio.DefaultConfig()
	cfg.GitHub.BlogRepo = ""
	if _, err := portfolio.New(cfg); !errors.Is(err, portfolio.ErrGitHubBlogRepoRequired) {
		t.Fatalf("expected ErrGitHubBlogRepoRequired, got %v", err)
	}
}

func TestModuleServesFallbackWithoutToken(t *testing.T) {
	var logs bytes.Buffer
	module, err := portfolio.New(portfolio.DefaultConfig(), quietProvider(&logs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []portfolio.PostRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 4 || list[3].Slug != "university-journey" {
		t.Fatalf("unexpected posts %+v", list)
	}
	if !strings.Contains(logs.String(), "posts.ingest.fallback") {
		t.Fatalf("expected fallback to be logged, got:\n%s", logs.String())
	}

	profileRec := httptest.NewRecorder()
	module.Handler().ServeHTTP(profileRec, httptest.NewRequest(http.MethodGet, "/api/github/profile", nil))
	if profileRec.Code != http.StatusInternalServerError || !strings.Contains(profileRec.Body.String(), "GitHub token not found") {
		t.Fatalf("unexpected profile response %d %s", profileRec.Code, profileRec.Body.String())
	}
}

func TestModuleIngestsFromGitHub(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/bonsa9/blog-posts/contents":
			if r.Header.Get("Authorization") != "Bearer secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"name": "first-post.md", "type": "file", "download_url": server.URL + "/raw/first-post.md", "html_url": "https://github.com/bonsa9/blog-posts/blob/main/first-post.md"},
				{"name": "broken.md", "type": "file", "download_url": server.URL + "/raw/broken.md"},
				{"name": "image.png", "type": "file", "download_url": server.URL + "/raw/image.png"},
			})
		case "/raw/first-post.md":
			_, _ = w.Write([]byte("---\ntitle: \"First Post\"\ntags: [go, \"web\"]\n---\nHello **world**\n"))
		case "/raw/broken.md":
			_, _ = w.Write([]byte("no front matter"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cfg := portfolio.DefaultConfig()
	cfg.GitHub.APIBaseURL = server.URL
	cfg.GitHub.Token = "secret"

	var logs bytes.Buffer
	fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	module, err := portfolio.New(cfg, quietProvider(&logs), portfolio.WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	records := module.Posts().Ingest(context.Background())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %+v", records)
	}
	got := records[0]
	if got.Title != "First Post" || got.Slug != "first-post" || got.Date != "2024-05-01" {
		t.Fatalf("unexpected record %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "web" {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
	if got.SourceURL != "https://github.com/bonsa9/blog-posts/blob/main/first-post.md" {
		t.Fatalf("unexpected source url %q", got.SourceURL)
	}
	if !strings.Contains(logs.String(), "posts.file.skipped") {
		t.Fatalf("expected skipped file to be logged, got:\n%s", logs.String())
	}

	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/first-post", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "\\u003cstrong\\u003eworld") {
		t.Fatalf("unexpected detail response %d %s", rec.Code, rec.Body.String())
	}
}

func TestModuleExportPosts(t *testing.T) {
	var logs bytes.Buffer
	module, err := portfolio.New(portfolio.DefaultConfig(), quietProvider(&logs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := filepath.Join(t.TempDir(), "public", "posts.json")
	if err := module.ExportPostsHandler().Execute(context.Background(), portfolio.ExportPostsCommand{OutputPath: out}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded []portfolio.PostRecord
	if err := json.Unmarshal(data, &decoded); err != nil || len(decoded) != 4 {
		t.Fatalf("unexpected export %s (%v)", data, err)
	}
}
