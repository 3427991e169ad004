package github

import "time"

// ContentEntry is one item of a repository contents listing.
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	SHA         string `json:"sha"`
	DownloadURL string `json:"download_url"`
	HTMLURL     string `json:"html_url"`
}

// Repository mirrors the subset of the repository payload the projects page
// renders.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug,omitempty"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Topics          []string  `json:"topics"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        string    `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile is the authenticated user's public profile.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// ListReposOptions narrows the repository listing.
type ListReposOptions struct {
	Sort    string
	PerPage int
}
