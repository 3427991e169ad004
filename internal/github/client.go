package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

// DefaultBaseURL is the public REST endpoint.
const DefaultBaseURL = "https://api.github.com"

const (
	acceptHeader     = "application/vnd.github.v3+json"
	apiVersionHeader = "X-GitHub-Api-Version"
	apiVersion       = "2022-11-28"
	defaultTimeout   = 10 * time.Second
	defaultRepoSort  = "updated"
	defaultRepoPage  = 50
	maxResponseBytes = 8 << 20
	defaultUserAgent = "bonsa9-portfolio"
)

// Config points the client at an API host.
type Config struct {
	BaseURL   string
	Token     string
	UserAgent string
	Timeout   time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to the GitHub REST API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	logger    interfaces.Logger
}

// NewClient builds a Client from cfg, filling defaults for empty fields.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		baseURL:   baseURL,
		token:     strings.TrimSpace(cfg.Token),
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// HasToken reports whether authenticated endpoints can be called.
func (c *Client) HasToken() bool {
	return c != nil && c.token != ""
}

// ListContents returns the directory listing at path inside owner/repo.
func (c *Client) ListContents(ctx context.Context, owner, repo, path string) ([]ContentEntry, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents", url.PathEscape(owner), url.PathEscape(repo))
	if trimmed := strings.Trim(strings.TrimSpace(path), "/"); trimmed != "" {
		endpoint += "/" + escapePath(trimmed)
	}

	var entries []ContentEntry
	if err := c.getJSON(ctx, c.baseURL+endpoint, true, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchRaw downloads an absolute URL, typically a content entry's
// download_url, without credentials.
func (c *Client) FetchRaw(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.do(ctx, rawURL, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(err, rawURL)
	}
	return body, nil
}

// ListRepositories lists repositories of the authenticated user.
func (c *Client) ListRepositories(ctx context.Context, opts ListReposOptions) ([]Repository, error) {
	if !c.HasToken() {
		return nil, tokenMissingError("/user/repos")
	}
	sort := strings.TrimSpace(opts.Sort)
	if sort == "" {
		sort = defaultRepoSort
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = defaultRepoPage
	}
	query := url.Values{}
	query.Set("sort", sort)
	query.Set("per_page", strconv.Itoa(perPage))

	var repos []Repository
	if err := c.getJSON(ctx, c.baseURL+"/user/repos?"+query.Encode(), true, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Profile fetches the authenticated user.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	if !c.HasToken() {
		return Profile{}, tokenMissingError("/user")
	}
	var profile Profile
	if err := c.getJSON(ctx, c.baseURL+"/user", true, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, authenticated bool, target any) error {
	resp, err := c.do(ctx, rawURL, authenticated)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(target); err != nil {
		return decodeError(err, rawURL)
	}
	return nil
}

// do performs a GET and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, rawURL string, authenticated bool) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, requestError(err, rawURL)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set(apiVersionHeader, apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if authenticated && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("github.request.failed", "url", rawURL, "error", err)
		return nil, transportError(err, rawURL)
	}
	c.logger.Debug("github.request.completed", "url", rawURL, "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		resp.Body.Close()
		return nil, statusError(resp.StatusCode, rawURL)
	}
	return resp, nil
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
