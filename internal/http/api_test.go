package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bonsa9/portfolio/internal/chatbot"
	"github.com/bonsa9/portfolio/internal/github"
	"github.com/bonsa9/portfolio/internal/posts"
	"github.com/bonsa9/portfolio/internal/profile"
	"github.com/bonsa9/portfolio/internal/projects"
)

type stubPosts struct {
	records []posts.Record
}

func (s stubPosts) Ingest(context.Context) []posts.Record { return s.records }

func (s stubPosts) Find(_ context.Context, slug string) (posts.Record, bool) {
	for _, record := range s.records {
		if record.Slug == slug {
			return record, true
		}
	}
	return posts.Record{}, false
}

type stubProjects struct {
	got projects.Filter
}

func (s *stubProjects) List(_ context.Context, filter projects.Filter) []github.Repository {
	s.got = filter
	return filter.Apply(projects.Fallback())
}

type stubProfile struct {
	result github.Profile
	err    error
}

func (s stubProfile) Get(context.Context) (github.Profile, error) { return s.result, s.err }

func setupAPI(t *testing.T, opts ...Option) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	if err := NewAPI(opts...).Register(mux); err != nil {
		t.Fatalf("register: %v", err)
	}
	return mux
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestBlogListAlwaysOKWithNoStore(t *testing.T) {
	mux := setupAPI(t, WithPostService(stubPosts{records: posts.Fallback()}))

	rec := doJSONRequest(t, mux, http.MethodGet, "/api/blog", nil, http.StatusOK)
	if got := rec.Header().Get("Cache-Control"); got != "no-store, no-cache, must-revalidate" {
		t.Fatalf("unexpected cache-control %q", got)
	}
	var list []posts.Record
	decodeJSONBody(t, rec, &list)
	if len(list) != 4 || list[0].Slug != "getting-started-react-native" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestBlogListEmptyEncodesArray(t *testing.T) {
	mux := setupAPI(t, WithPostService(stubPosts{records: []posts.Record{}}))
	rec := doJSONRequest(t, mux, http.MethodGet, "/api/blog", nil, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}

func TestBlogDetail(t *testing.T) {
	record := posts.Record{ID: "hello", Slug: "hello", Title: "Hello", Body: "# Heading\n", Tags: []string{}}
	mux := setupAPI(t,
		WithPostService(stubPosts{records: []posts.Record{record}}),
		WithRenderer(posts.NewRenderer(posts.RenderOptions{})),
	)

	rec := doJSONRequest(t, mux, http.MethodGet, "/api/blog/hello", nil, http.StatusOK)
	var detail map[string]any
	decodeJSONBody(t, rec, &detail)
	if detail["title"] != "Hello" || detail["content"] != "# Heading\n" {
		t.Fatalf("unexpected detail %v", detail)
	}
	html, _ := detail["html"].(string)
	if !strings.Contains(html, `<h1 id="heading">Heading</h1>`) {
		t.Fatalf("unexpected html %q", html)
	}

	missing := doJSONRequest(t, mux, http.MethodGet, "/api/blog/nope", nil, http.StatusNotFound)
	var errBody map[string]string
	decodeJSONBody(t, missing, &errBody)
	if errBody["error"] != "not_found" {
		t.Fatalf("unexpected error body %v", errBody)
	}
}

func TestRepositoriesPassFilter(t *testing.T) {
	service := &stubProjects{}
	mux := setupAPI(t, WithProjectService(service))

	rec := doJSONRequest(t, mux, http.MethodGet, "/api/github?filter=mobile&q=chat", nil, http.StatusOK)
	if service.got.Category != "mobile" || service.got.Query != "chat" {
		t.Fatalf("unexpected filter %+v", service.got)
	}
	var repos []github.Repository
	decodeJSONBody(t, rec, &repos)
	if len(repos) != 1 || repos[0].Name != "chat-app-react-native" {
		t.Fatalf("unexpected repositories %+v", repos)
	}
}

func TestProfileErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{profile.ErrTokenMissing, "GitHub token not found"},
		{errors.New("boom"), "Failed to fetch profile"},
	}
	for _, tc := range cases {
		mux := setupAPI(t, WithProfileService(stubProfile{err: tc.err}))
		rec := doJSONRequest(t, mux, http.MethodGet, "/api/github/profile", nil, http.StatusInternalServerError)
		var body map[string]string
		decodeJSONBody(t, rec, &body)
		if body["error"] != tc.want {
			t.Fatalf("expected %q, got %v", tc.want, body)
		}
	}
}

func TestProfileSuccess(t *testing.T) {
	mux := setupAPI(t, WithProfileService(stubProfile{result: github.Profile{Login: "bonsa9"}}))
	rec := doJSONRequest(t, mux, http.MethodGet, "/api/github/profile", nil, http.StatusOK)
	var got github.Profile
	decodeJSONBody(t, rec, &got)
	if got.Login != "bonsa9" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestChat(t *testing.T) {
	mux := setupAPI(t, WithPersona(chatbot.Persona{Name: "Bonsa", Email: "me@example.com"}))

	rec := doJSONRequest(t, mux, http.MethodPost, "/api/chat", map[string]string{"message": "tell me more", "topic": "skills"}, http.StatusOK)
	var reply chatbot.Reply
	decodeJSONBody(t, rec, &reply)
	if reply.Topic != chatbot.TopicDetailedSkills || reply.ID == "" {
		t.Fatalf("unexpected reply %+v", reply)
	}

	doJSONRequest(t, mux, http.MethodPost, "/api/chat", map[string]string{"message": ""}, http.StatusBadRequest)
	doJSONRequest(t, mux, http.MethodPost, "/api/chat", map[string]string{"message": " \t\n "}, http.StatusBadRequest)
	doJSONRequest(t, mux, http.MethodPost, "/api/chat", map[string]string{"message": "hi", "topic": "weather"}, http.StatusBadRequest)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	bad := httptest.NewRecorder()
	mux.ServeHTTP(bad, req)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", bad.Code)
	}

	welcome := doJSONRequest(t, mux, http.MethodGet, "/api/chat/welcome", nil, http.StatusOK)
	var opening chatbot.Reply
	decodeJSONBody(t, welcome, &opening)
	if len(opening.Suggestions) == 0 {
		t.Fatalf("expected welcome suggestions")
	}
}

func TestHealthAndRequestID(t *testing.T) {
	handler := NewAPI().Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") != "req-42" {
		t.Fatalf("expected request id to be echoed")
	}
}

func TestUnwiredRoutesAreAbsent(t *testing.T) {
	mux := setupAPI(t)
	doJSONRequest(t, mux, http.MethodGet, "/api/blog", nil, http.StatusNotFound)
	doJSONRequest(t, mux, http.MethodGet, "/api/github/profile", nil, http.StatusNotFound)
}

func TestJoinPath(t *testing.T) {
	cases := map[[2]string]string{
		{"", ""}:          "/",
		{"/api/", ""}:     "/api",
		{"api", "/blog/"}: "/api/blog",
		{"", "blog"}:      "/blog",
	}
	for in, want := range cases {
		if got := joinPath(in[0], in[1]); got != want {
			t.Fatalf("joinPath(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
