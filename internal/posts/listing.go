package posts

import (
	"strings"

	"github.com/bonsa9/portfolio/internal/github"
)

// FileRef identifies one markdown file to download.
type FileRef struct {
	Name        string
	DownloadURL string
	HTMLURL     string
}

// ListEligibleFiles keeps file entries whose name ends in ".md".
func ListEligibleFiles(entries []github.ContentEntry) []FileRef {
	files := make([]FileRef, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "" && entry.Type != "file" {
			continue
		}
		if !strings.HasSuffix(entry.Name, markdownSuffix) {
			continue
		}
		files = append(files, FileRef{
			Name:        entry.Name,
			DownloadURL: entry.DownloadURL,
			HTMLURL:     entry.HTMLURL,
		})
	}
	return files
}
