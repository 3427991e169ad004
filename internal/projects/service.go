package projects

import (
	"context"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/bonsa9/portfolio/internal/github"
	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

const (
	listSort    = "updated"
	listPerPage = 50
)

// Source lists the owner's repositories.
type Source interface {
	HasToken() bool
	ListRepositories(ctx context.Context, opts github.ListReposOptions) ([]github.Repository, error)
}

// Service serves the projects page listing.
type Service struct {
	source Source
	logger interfaces.Logger
}

// NewService builds a Service. A nil logger falls back to the no-op logger.
func NewService(source Source, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{source: source, logger: logger}
}

// List returns the owner's repositories, or the built-in set when no token
// is configured or the API call fails, narrowed by filter.
func (s *Service) List(ctx context.Context, filter Filter) []github.Repository {
	repos := s.load(ctx)
	for i := range repos {
		repos[i].Slug = repositorySlug(repos[i].Name)
	}
	return filter.Apply(repos)
}

func (s *Service) load(ctx context.Context) []github.Repository {
	if s.source == nil || !s.source.HasToken() {
		s.logger.Info("projects.list.fallback", "reason", "token_missing")
		return Fallback()
	}
	repos, err := s.source.ListRepositories(ctx, github.ListReposOptions{Sort: listSort, PerPage: listPerPage})
	if err != nil {
		s.logger.Warn("projects.list.fallback", "reason", "api_failed", "error", err)
		return Fallback()
	}
	for i := range repos {
		if repos[i].Topics == nil {
			repos[i].Topics = []string{}
		}
	}
	return repos
}

func repositorySlug(name string) string {
	if normalized, err := slug.Normalize(name); err == nil && normalized != "" {
		return normalized
	}
	return strings.ToLower(strings.TrimSpace(name))
}
