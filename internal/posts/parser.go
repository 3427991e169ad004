package posts

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

const fence = "---"

var fenceFormat = frontmatter.NewFormat(fence, fence, unmarshalFrontMatter)

// ParseRecord parses one markdown file. It reports false when the file does
// not open with a closed front-matter block or cannot be parsed.
func ParseRecord(raw, filename string, now time.Time) (record Record, ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			record, ok = Record{}, false
		}
	}()

	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return Record{}, false
	}
	return buildRecord(fm, body, filename, now), true
}

func splitFrontMatter(raw string) (FrontMatter, string, error) {
	firstLine, rest, _ := strings.Cut(raw, "\n")
	if strings.TrimRight(firstLine, " \t\r") != fence {
		return nil, "", fmt.Errorf("posts: missing opening fence")
	}
	if indentedClosingFence(rest) {
		return nil, "", fmt.Errorf("posts: closing fence must start the line")
	}

	var fm FrontMatter
	body, err := frontmatter.MustParse(strings.NewReader(raw), &fm, fenceFormat)
	if err != nil {
		return nil, "", err
	}
	if fm == nil {
		fm = FrontMatter{}
	}
	return fm, string(body), nil
}

// indentedClosingFence reports whether the first line that would close the
// front-matter block carries leading whitespace.
func indentedClosingFence(rest string) bool {
	for line := range strings.SplitSeq(rest, "\n") {
		if strings.TrimSpace(line) != fence {
			continue
		}
		return strings.TrimRight(line, " \t\r") != fence
	}
	return false
}

func buildRecord(fm FrontMatter, body, filename string, now time.Time) Record {
	slug := Slugify(filename)
	record := Record{
		ID:       slug,
		Slug:     slug,
		Title:    untitled,
		Body:     body,
		Date:     today(now),
		ReadTime: ReadTime(body),
		Tags:     []string{},
	}
	if title, ok := fm.Text("title"); ok {
		record.Title = title
	}
	if excerpt, ok := fm.Text("excerpt"); ok {
		record.Excerpt = excerpt
	} else {
		record.Excerpt = Excerpt(body)
	}
	if date, ok := fm.Text("date"); ok {
		record.Date = date
	}
	if tags, ok := fm.List("tags"); ok {
		record.Tags = tags
	}
	return record
}
