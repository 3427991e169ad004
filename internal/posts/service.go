package posts

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/bonsa9/portfolio/internal/github"
	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

// Source is the subset of the GitHub client used during ingestion.
type Source interface {
	ListContents(ctx context.Context, owner, repo, path string) ([]github.ContentEntry, error)
	FetchRaw(ctx context.Context, url string) ([]byte, error)
}

// Config names the repository holding the posts. Enabled gates all source
// access; the module sets it when a GitHub token is configured or a local
// directory is used.
type Config struct {
	Owner   string
	Repo    string
	Path    string
	Enabled bool
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for defaulted dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service ingests posts on demand. It holds no per-request state.
type Service struct {
	source Source
	cfg    Config
	logger interfaces.Logger
	now    func() time.Time
}

// NewService builds a Service. A nil source always serves the fallback.
func NewService(source Source, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		source: source,
		cfg:    cfg,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Ingest returns every parseable post, newest first, or the fallback posts.
func (s *Service) Ingest(ctx context.Context) []Record {
	if !s.cfg.Enabled || s.source == nil {
		s.logger.Info("posts.ingest.fallback", "reason", "token_missing")
		return Fallback()
	}

	entries, err := s.source.ListContents(ctx, s.cfg.Owner, s.cfg.Repo, s.cfg.Path)
	if err != nil {
		s.logger.Warn("posts.ingest.fallback", "reason", "listing_failed", "error", err)
		return Fallback()
	}

	files := ListEligibleFiles(entries)
	now := s.now()
	records := make([]Record, 0, len(files))
	for _, file := range files {
		record, ok := s.ingestFile(ctx, file, now)
		if ok {
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		s.logger.Warn("posts.ingest.fallback", "reason", "no_records", "files", len(files))
		return Fallback()
	}

	SortNewestFirst(records)
	s.logger.Debug("posts.ingest.completed", "records", len(records), "files", len(files))
	return records
}

func (s *Service) ingestFile(ctx context.Context, file FileRef, now time.Time) (Record, bool) {
	logger := logging.WithPostContext(s.logger, file.Name, "", sourceName(s.source))
	if strings.TrimSpace(file.DownloadURL) == "" {
		logger.Warn("posts.file.skipped", "reason", "download_url_missing")
		return Record{}, false
	}

	raw, err := s.source.FetchRaw(ctx, file.DownloadURL)
	if err != nil {
		logger.Warn("posts.file.skipped", "reason", "fetch_failed", "error", err)
		return Record{}, false
	}

	record, ok := ParseRecord(string(raw), file.Name, now)
	if !ok {
		logger.Warn("posts.file.skipped", "reason", "parse_failed")
		return Record{}, false
	}
	record.SourceURL = file.HTMLURL
	return record, true
}

// Find ingests and returns the first post with slug.
func (s *Service) Find(ctx context.Context, slug string) (Record, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Record{}, false
	}
	for _, record := range s.Ingest(ctx) {
		if record.Slug == slug {
			return record, true
		}
	}
	return Record{}, false
}

// SortNewestFirst orders records by descending date string, keeping the
// input order of equal dates.
func SortNewestFirst(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Date, a.Date)
	})
}

func sourceName(source Source) string {
	if _, ok := source.(*DirSource); ok {
		return "local"
	}
	return "github"
}
