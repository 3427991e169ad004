package posts

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bonsa9/portfolio/internal/github"
)

// DirSource serves a local checkout of the blog repository through the same
// listing/fetch contract as the GitHub client. Listings are not recursive,
// matching the contents API.
type DirSource struct {
	fsys        fs.FS
	htmlBaseURL string
}

var _ Source = (*DirSource)(nil)

// NewDirSource reads from fsys. When htmlBaseURL is set, entries link to
// htmlBaseURL + "/" + path.
func NewDirSource(fsys fs.FS, htmlBaseURL string) *DirSource {
	return &DirSource{fsys: fsys, htmlBaseURL: strings.TrimRight(strings.TrimSpace(htmlBaseURL), "/")}
}

// ListContents lists dir; owner and repo are ignored.
func (d *DirSource) ListContents(ctx context.Context, _, _, dir string) ([]github.ContentEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root := cleanRel(dir)
	items, err := fs.ReadDir(d.fsys, root)
	if err != nil {
		return nil, fmt.Errorf("posts: list %s: %w", root, err)
	}

	entries := make([]github.ContentEntry, 0, len(items))
	for _, item := range items {
		rel := path.Join(root, item.Name())
		entry := github.ContentEntry{
			Name: item.Name(),
			Path: rel,
			Type: "file",
		}
		if item.IsDir() {
			entry.Type = "dir"
		} else {
			entry.DownloadURL = rel
			if info, err := item.Info(); err == nil {
				entry.Size = info.Size()
			}
		}
		if d.htmlBaseURL != "" {
			entry.HTMLURL = d.htmlBaseURL + "/" + rel
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// FetchRaw reads the file at the relative path returned as DownloadURL.
func (d *DirSource) FetchRaw(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(d.fsys, cleanRel(rel))
	if err != nil {
		return nil, fmt.Errorf("posts: read %s: %w", rel, err)
	}
	return data, nil
}

func cleanRel(p string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(p))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
