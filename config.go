package portfolio

import "github.com/bonsa9/portfolio/internal/runtimeconfig"

var (
	ErrHTTPAddrRequired        = runtimeconfig.ErrHTTPAddrRequired
	ErrHTTPTimeoutInvalid      = runtimeconfig.ErrHTTPTimeoutInvalid
	ErrGitHubAPIBaseURLInvalid = runtimeconfig.ErrGitHubAPIBaseURLInvalid
	ErrGitHubOwnerRequired     = runtimeconfig.ErrGitHubOwnerRequired
	ErrGitHubBlogRepoRequired  = runtimeconfig.ErrGitHubBlogRepoRequired
	ErrGitHubTimeoutInvalid    = runtimeconfig.ErrGitHubTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrPersonaNameRequired     = runtimeconfig.ErrPersonaNameRequired
)

type (
	Config        = runtimeconfig.Config
	HTTPConfig    = runtimeconfig.HTTPConfig
	GitHubConfig  = runtimeconfig.GitHubConfig
	PersonaConfig = runtimeconfig.PersonaConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads an optional YAML file plus .env files and environment
// overrides on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
