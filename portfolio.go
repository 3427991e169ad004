// Package portfolio wires configuration, the GitHub client and the content
// services into a single module that serves the portfolio JSON API.
package portfolio

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bonsa9/portfolio/internal/chatbot"
	"github.com/bonsa9/portfolio/internal/commands"
	"github.com/bonsa9/portfolio/internal/github"
	phttp "github.com/bonsa9/portfolio/internal/http"
	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/internal/logging/console"
	"github.com/bonsa9/portfolio/internal/logging/gologger"
	"github.com/bonsa9/portfolio/internal/posts"
	"github.com/bonsa9/portfolio/internal/profile"
	"github.com/bonsa9/portfolio/internal/projects"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

// PostRecord is one ingested blog post.
type PostRecord = posts.Record

// ExportPostsCommand writes the ingested posts to a JSON file.
type ExportPostsCommand = commands.ExportPostsCommand

// Option customises module construction.
type Option func(*options)

type options struct {
	provider   interfaces.LoggerProvider
	httpClient *http.Client
	clock      func() time.Time
}

// WithLoggerProvider replaces the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithHTTPClient sets the client used for outbound GitHub calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithClock overrides the time source used for defaulted post dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// Module holds the wired services.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	client   *github.Client
	posts    *posts.Service
	renderer *posts.Renderer
	projects *projects.Service
	profile  *profile.Service
	api      *phttp.API
}

// New validates cfg and builds every service.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	provider := o.provider
	if provider == nil {
		var err error
		if provider, err = newLoggerProvider(cfg.Logging); err != nil {
			return nil, err
		}
	}

	clientOpts := []github.Option{github.WithLogger(logging.GitHubLogger(provider))}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, github.WithHTTPClient(o.httpClient))
	}
	client := github.NewClient(github.Config{
		BaseURL:   cfg.GitHub.APIBaseURL,
		Token:     cfg.GitHub.Token,
		UserAgent: cfg.GitHub.UserAgent,
		Timeout:   cfg.GitHub.Timeout,
	}, clientOpts...)

	postOpts := []posts.ServiceOption{posts.WithLogger(logging.PostsLogger(provider))}
	if o.clock != nil {
		postOpts = append(postOpts, posts.WithClock(o.clock))
	}

	var source posts.Source = client
	postCfg := posts.Config{
		Owner:   cfg.GitHub.Owner,
		Repo:    cfg.GitHub.BlogRepo,
		Path:    cfg.GitHub.BlogPath,
		Enabled: cfg.GitHub.HasToken(),
	}
	if dir := strings.TrimSpace(cfg.GitHub.BlogDir); dir != "" {
		source = posts.NewDirSource(os.DirFS(dir), blogHTMLBase(cfg.GitHub))
		postCfg.Enabled = true
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		client:   client,
		posts:    posts.NewService(source, postCfg, postOpts...),
		renderer: posts.NewRenderer(posts.RenderOptions{}),
		projects: projects.NewService(client, logging.ProjectsLogger(provider)),
		profile:  profile.NewService(client, logging.ProfileLogger(provider)),
	}
	m.api = phttp.NewAPI(
		phttp.WithPostService(m.posts),
		phttp.WithRenderer(m.renderer),
		phttp.WithProjectService(m.projects),
		phttp.WithProfileService(m.profile),
		phttp.WithPersona(personaFrom(cfg.Persona)),
		phttp.WithLogger(logging.HTTPLogger(provider)),
	)
	return m, nil
}

// Config returns the validated configuration.
func (m *Module) Config() Config {
	return m.cfg
}

// Logger returns a module logger from the configured provider.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, module)
}

// Posts exposes the ingestion service.
func (m *Module) Posts() *posts.Service {
	return m.posts
}

// Projects exposes the repository listing service.
func (m *Module) Projects() *projects.Service {
	return m.projects
}

// Profile exposes the profile lookup service.
func (m *Module) Profile() *profile.Service {
	return m.profile
}

// Handler returns the HTTP handler serving every API route.
func (m *Module) Handler() http.Handler {
	return m.api.Handler()
}

// ExportPostsHandler returns the command handler that writes posts to disk.
func (m *Module) ExportPostsHandler() *commands.Handler[commands.ExportPostsCommand] {
	return commands.NewExportPostsHandler(m.posts, commands.CommandLogger(m.provider, "export"))
}

func blogHTMLBase(cfg GitHubConfig) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/main", cfg.Owner, cfg.BlogRepo)
}

func personaFrom(cfg PersonaConfig) chatbot.Persona {
	return chatbot.Persona{
		Name:       cfg.Name,
		Email:      cfg.Email,
		Phone:      cfg.Phone,
		Twitter:    cfg.Twitter,
		Location:   cfg.Location,
		University: cfg.University,
		Degree:     cfg.Degree,
		GitHubURL:  cfg.GitHubURL,
	}
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "console", "":
		level := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
