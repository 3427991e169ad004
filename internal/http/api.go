package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bonsa9/portfolio/internal/chatbot"
	"github.com/bonsa9/portfolio/internal/github"
	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/internal/posts"
	"github.com/bonsa9/portfolio/internal/projects"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

// PostService serves blog records.
type PostService interface {
	Ingest(ctx context.Context) []posts.Record
	Find(ctx context.Context, slug string) (posts.Record, bool)
}

// MarkdownRenderer converts a post body to HTML.
type MarkdownRenderer interface {
	Render(body string) (string, error)
}

// ProjectService lists repositories for the projects page.
type ProjectService interface {
	List(ctx context.Context, filter projects.Filter) []github.Repository
}

// ProfileService fetches the owner's GitHub profile.
type ProfileService interface {
	Get(ctx context.Context) (github.Profile, error)
}

// API registers the portfolio endpoints.
type API struct {
	basePath string
	posts    PostService
	renderer MarkdownRenderer
	projects ProjectService
	profile  ProfileService
	persona  chatbot.Persona
	logger   interfaces.Logger
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPostService wires the blog endpoints.
func WithPostService(service PostService) Option {
	return func(api *API) {
		api.posts = service
	}
}

// WithRenderer wires the markdown renderer used by the post detail route.
func WithRenderer(renderer MarkdownRenderer) Option {
	return func(api *API) {
		api.renderer = renderer
	}
}

// WithProjectService wires the repository listing.
func WithProjectService(service ProjectService) Option {
	return func(api *API) {
		api.projects = service
	}
}

// WithProfileService wires the profile lookup.
func WithProfileService(service ProfileService) Option {
	return func(api *API) {
		api.profile = service
	}
}

// WithPersona sets the facts the chatbot answers with.
func WithPersona(persona chatbot.Persona) Option {
	return func(api *API) {
		api.persona = persona
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts every configured route on mux. Routes whose service is
// not wired are skipped.
func (api *API) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: api is nil")
	}

	base := joinPath(api.basePath, "")
	mux.HandleFunc("GET /healthz", api.handleHealth)
	api.registerBlogRoutes(mux, base)
	api.registerGitHubRoutes(mux, base)
	api.registerChatRoutes(mux, base)
	return nil
}

// Handler returns a mux with every route registered, wrapped in request
// logging.
func (api *API) Handler() http.Handler {
	mux := http.NewServeMux()
	_ = api.Register(mux)
	return withRequestLogging(mux, api.logger)
}

func (api *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
