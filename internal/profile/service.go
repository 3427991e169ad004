package profile

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/bonsa9/portfolio/internal/github"
	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

// ErrTokenMissing is returned when no GitHub credential is configured.
var ErrTokenMissing = errors.New("profile: github token not configured")

// Source fetches the authenticated user's profile.
type Source interface {
	HasToken() bool
	Profile(ctx context.Context) (github.Profile, error)
}

// Service looks up the owner's GitHub profile. It has no fallback data.
type Service struct {
	source Source
	logger interfaces.Logger
}

// NewService builds a Service.
func NewService(source Source, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{source: source, logger: logger}
}

// Get returns the profile, ErrTokenMissing, or a wrapped API error.
func (s *Service) Get(ctx context.Context) (github.Profile, error) {
	if s.source == nil || !s.source.HasToken() {
		s.logger.Warn("profile.get.token_missing")
		return github.Profile{}, ErrTokenMissing
	}
	profile, err := s.source.Profile(ctx)
	if err != nil {
		s.logger.Error("profile.get.failed", "error", err)
		return github.Profile{}, goerrors.Wrap(err, goerrors.CategoryExternal, "profile lookup failed")
	}
	return profile, nil
}
