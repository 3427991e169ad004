package posts

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	untitled       = "Untitled"
	untitledSlug   = "untitled"
	excerptRunes   = 200
	excerptSuffix  = "..."
	wordsPerMinute = 200
	dateLayout     = "2006-01-02"
	markdownSuffix = ".md"
)

// Record is one blog post as served to the site.
type Record struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Body      string   `json:"content"`
	Date      string   `json:"date"`
	ReadTime  string   `json:"readTime"`
	Tags      []string `json:"tags"`
	Slug      string   `json:"slug"`
	SourceURL string   `json:"githubUrl,omitempty"`
}

func (r Record) clone() Record {
	r.Tags = append([]string{}, r.Tags...)
	return r
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a record slug from its filename.
func Slugify(filename string) string {
	base := strings.ToLower(strings.TrimSuffix(filename, markdownSuffix))
	slug := strings.Trim(slugSeparators.ReplaceAllString(base, "-"), "-")
	if slug == "" {
		return untitledSlug
	}
	return slug
}

// ReadTime estimates reading time at 200 words per minute, never below one
// minute.
func ReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Excerpt is the first 200 characters of body, trimmed, with an ellipsis.
func Excerpt(body string) string {
	runes := []rune(body)
	if len(runes) > excerptRunes {
		runes = runes[:excerptRunes]
	}
	return strings.TrimSpace(string(runes)) + excerptSuffix
}

func today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}
