package projects

import (
	"slices"
	"strings"

	"github.com/bonsa9/portfolio/internal/github"
)

// Category values accepted by Filter.
const (
	CategoryAll    = "all"
	CategoryMobile = "mobile"
	CategoryWeb    = "web"
)

var categoryTopics = map[string][]string{
	CategoryMobile: {"react-native", "flutter", "mobile", "ios", "android"},
	CategoryWeb:    {"nextjs", "react", "web", "frontend", "backend"},
}

// Filter narrows a repository listing. Unknown categories behave like all.
type Filter struct {
	Category string
	Query    string
}

// Apply returns the repositories matching f, preserving order.
func (f Filter) Apply(repos []github.Repository) []github.Repository {
	topics := categoryTopics[strings.ToLower(strings.TrimSpace(f.Category))]
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]github.Repository, 0, len(repos))
	for _, repo := range repos {
		if topics != nil && !hasAnyTopic(repo, topics) {
			continue
		}
		if query != "" && !matchesQuery(repo, query) {
			continue
		}
		out = append(out, repo)
	}
	return out
}

func hasAnyTopic(repo github.Repository, topics []string) bool {
	for _, topic := range repo.Topics {
		if slices.Contains(topics, topic) {
			return true
		}
	}
	return false
}

func matchesQuery(repo github.Repository, query string) bool {
	if strings.Contains(strings.ToLower(repo.Name), query) ||
		strings.Contains(strings.ToLower(repo.Description), query) {
		return true
	}
	for _, topic := range repo.Topics {
		if strings.Contains(strings.ToLower(topic), query) {
			return true
		}
	}
	return false
}
