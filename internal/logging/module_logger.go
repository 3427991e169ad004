package logging

import (
	"context"
	"strings"

	"github.com/bonsa9/portfolio/pkg/interfaces"
)

const (
	rootModule     = "portfolio"
	postsModule    = "portfolio.posts"
	githubModule   = "portfolio.github"
	projectsModule = "portfolio.projects"
	profileModule  = "portfolio.profile"
	chatModule     = "portfolio.chat"
	httpModule     = "portfolio.http"
)

const (
	fieldPostFile = "file"
	fieldPostSlug = "slug"
	fieldSource   = "source"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields the
// no-op logger so services never have to nil-check.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{"module": module})
}

// PostsLogger is the namespace used by the post ingestion pipeline.
func PostsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, postsModule)
}

// GitHubLogger is the namespace used by the outbound GitHub client.
func GitHubLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, githubModule)
}

// ProjectsLogger is the namespace used by the repository listing service.
func ProjectsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, projectsModule)
}

// ProfileLogger is the namespace used by the profile lookup service.
func ProfileLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, profileModule)
}

// ChatLogger is the namespace used by the chatbot endpoint.
func ChatLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, chatModule)
}

// HTTPLogger is the namespace used by inbound API handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithPostContext adds the source file, slug and source name to logger.
// Empty values are skipped.
func WithPostContext(logger interfaces.Logger, file, slug, source string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(file); trimmed != "" {
		fields[fieldPostFile] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldPostSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSource] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
