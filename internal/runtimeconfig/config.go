package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrHTTPAddrRequired rejects an empty listen address.
var ErrHTTPAddrRequired = errors.New("portfolio config: http address is required")
var ErrHTTPTimeoutInvalid = errors.New("portfolio config: http timeouts must be zero or positive")
var ErrGitHubAPIBaseURLInvalid = errors.New("portfolio config: github api base url must be an absolute http(s) url")
var ErrGitHubOwnerRequired = errors.New("portfolio config: github owner is required")
var ErrGitHubBlogRepoRequired = errors.New("portfolio config: github blog repository is required")
var ErrGitHubTimeoutInvalid = errors.New("portfolio config: github timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("portfolio config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")
var ErrPersonaNameRequired = errors.New("portfolio config: persona name is required")

// Config aggregates everything the portfolio binaries need at start-up.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	GitHub  GitHubConfig  `yaml:"github"`
	Persona PersonaConfig `yaml:"persona"`
	Logging LoggingConfig `yaml:"logging"`
}

// HTTPConfig controls the inbound API server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"PORTFOLIO_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"PORTFOLIO_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"PORTFOLIO_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"PORTFOLIO_SHUTDOWN_TIMEOUT"`
}

// GitHubConfig points the outbound client at the owner's account and the
// repository holding blog posts. Token is optional: without it every
// GitHub-backed endpoint serves its built-in dataset. BlogDir switches post
// ingestion to a local checkout of the blog repository.
type GitHubConfig struct {
	APIBaseURL string        `yaml:"api_base_url" env:"GITHUB_API_URL"`
	Token      string        `yaml:"token" env:"GITHUB_TOKEN"`
	Owner      string        `yaml:"owner" env:"GITHUB_OWNER"`
	BlogRepo   string        `yaml:"blog_repo" env:"GITHUB_BLOG_REPO"`
	BlogPath   string        `yaml:"blog_path" env:"GITHUB_BLOG_PATH"`
	UserAgent  string        `yaml:"user_agent" env:"GITHUB_USER_AGENT"`
	Timeout    time.Duration `yaml:"timeout" env:"GITHUB_TIMEOUT"`
	BlogDir    string        `yaml:"blog_dir" env:"PORTFOLIO_BLOG_DIR"`
}

// HasToken reports whether a credential is configured.
func (c GitHubConfig) HasToken() bool {
	return strings.TrimSpace(c.Token) != ""
}

// PersonaConfig holds the site owner's public facts used by the chatbot.
type PersonaConfig struct {
	Name       string `yaml:"name" env:"PERSONA_NAME"`
	Email      string `yaml:"email" env:"PERSONA_EMAIL"`
	Phone      string `yaml:"phone" env:"PERSONA_PHONE"`
	Twitter    string `yaml:"twitter" env:"PERSONA_TWITTER"`
	Location   string `yaml:"location" env:"PERSONA_LOCATION"`
	University string `yaml:"university" env:"PERSONA_UNIVERSITY"`
	Degree     string `yaml:"degree" env:"PERSONA_DEGREE"`
	GitHubURL  string `yaml:"github_url" env:"PERSONA_GITHUB_URL"`
}

// LoggingConfig selects the logger provider and its options.
type LoggingConfig struct {
	Provider  string   `yaml:"provider" env:"LOG_PROVIDER"`
	Level     string   `yaml:"level" env:"LOG_LEVEL"`
	Format    string   `yaml:"format" env:"LOG_FORMAT"`
	AddSource bool     `yaml:"add_source" env:"LOG_ADD_SOURCE"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		GitHub: GitHubConfig{
			APIBaseURL: "https://api.github.com",
			Owner:      "bonsa9",
			BlogRepo:   "blog-posts",
			UserAgent:  "bonsa9-portfolio",
			Timeout:    10 * time.Second,
		},
		Persona: PersonaConfig{
			Name:       "Bonsa Asafa",
			Email:      "bonsakakuu@gmail.com",
			Phone:      "+251949097048",
			Twitter:    "@BonsaAAyana",
			Location:   "Adama, Ethiopia",
			University: "Adama Science and Technology University",
			Degree:     "Software Engineering",
			GitHubURL:  "https://github.com/bonsa9",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

var (
	supportedProviders = []any{"console", "gologger"}
	supportedLevels    = []any{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	supportedFormats   = []any{"json", "console", "pretty"}
)

// Validate reports the first configuration problem found.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	for _, timeout := range []time.Duration{cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.ShutdownTimeout} {
		if err := validation.Validate(int64(timeout), validation.Min(int64(0))); err != nil {
			return fmt.Errorf("%w: %s", ErrHTTPTimeoutInvalid, timeout)
		}
	}

	if err := validation.Validate(cfg.GitHub.APIBaseURL, validation.Required, validation.By(absoluteHTTPURL)); err != nil {
		return fmt.Errorf("%w: %v", ErrGitHubAPIBaseURLInvalid, err)
	}
	if err := validation.Validate(strings.TrimSpace(cfg.GitHub.Owner), validation.Required); err != nil {
		return ErrGitHubOwnerRequired
	}
	if err := validation.Validate(strings.TrimSpace(cfg.GitHub.BlogRepo), validation.Required); err != nil {
		return ErrGitHubBlogRepoRequired
	}
	if cfg.GitHub.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrGitHubTimeoutInvalid, cfg.GitHub.Timeout)
	}

	if strings.TrimSpace(cfg.Persona.Name) == "" {
		return ErrPersonaNameRequired
	}

	provider := normalize(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if err := validation.Validate(provider, validation.In(supportedProviders...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if err := validation.Validate(normalize(cfg.Logging.Level), validation.In(supportedLevels...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}
	if provider == "gologger" {
		if err := validation.Validate(normalize(cfg.Logging.Format), validation.In(supportedFormats...)); err != nil {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
		}
	}
	return nil
}

func absoluteHTTPURL(value any) error {
	raw, _ := value.(string)
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return validation.NewError("validation_absolute_url", "must be an absolute http(s) url")
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
