package posts_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bonsa9/portfolio/internal/posts"
)

var fixedNow = time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)

func TestParseRecordReadsFrontMatter(t *testing.T) {
	raw := "---\n" +
		"title: \"Hello: World\"\n" +
		"excerpt: 'Short intro'\n" +
		"date: 2024-02-01\n" +
		"tags: [a, b, \"c\"]\n" +
		"---\n" +
		"Body text here.\n"

	record, ok := posts.ParseRecord(raw, "Hello World.md", fixedNow)
	if !ok {
		t.Fatalf("expected record to parse")
	}
	if record.Title != "Hello: World" {
		t.Fatalf("expected dequoted title, got %q", record.Title)
	}
	if record.Excerpt != "Short intro" {
		t.Fatalf("unexpected excerpt %q", record.Excerpt)
	}
	if record.Date != "2024-02-01" {
		t.Fatalf("unexpected date %q", record.Date)
	}
	if !reflect.DeepEqual(record.Tags, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected tags %#v", record.Tags)
	}
	if record.Slug != "hello-world" || record.ID != "hello-world" {
		t.Fatalf("unexpected slug/id %q/%q", record.Slug, record.ID)
	}
	if record.Body != "Body text here.\n" {
		t.Fatalf("unexpected body %q", record.Body)
	}
	if record.ReadTime != "1 min read" {
		t.Fatalf("unexpected read time %q", record.ReadTime)
	}
	if record.SourceURL != "" {
		t.Fatalf("expected no source url from parser, got %q", record.SourceURL)
	}
}

func TestParseRecordDefaults(t *testing.T) {
	body := strings.Repeat("x", 250)
	record, ok := posts.ParseRecord("---\nauthor: me\n---\n"+body, "notes.md", fixedNow)
	if !ok {
		t.Fatalf("expected record to parse")
	}
	if record.Title != "Untitled" {
		t.Fatalf("expected placeholder title, got %q", record.Title)
	}
	if record.Excerpt != strings.Repeat("x", 200)+"..." {
		t.Fatalf("unexpected excerpt %q", record.Excerpt)
	}
	if record.Date != "2024-03-14" {
		t.Fatalf("expected today's date, got %q", record.Date)
	}
	if record.Tags == nil || len(record.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", record.Tags)
	}
}

func TestParseRecordEmptyValuesFallBackToDefaults(t *testing.T) {
	record, ok := posts.ParseRecord("---\ntitle: \"\"\nexcerpt:\ntags: a, b\n---\n  short body  ", "a.md", fixedNow)
	if !ok {
		t.Fatalf("expected record to parse")
	}
	if record.Title != "Untitled" {
		t.Fatalf("expected placeholder title, got %q", record.Title)
	}
	if record.Excerpt != "short body..." {
		t.Fatalf("unexpected excerpt %q", record.Excerpt)
	}
	if len(record.Tags) != 0 {
		t.Fatalf("expected non-array tags to be ignored, got %#v", record.Tags)
	}
}

func TestParseRecordRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"no front matter":   "# Just a heading\n",
		"leading blank":     "\n---\ntitle: x\n---\nbody",
		"indented fence":    "  ---\ntitle: x\n---\nbody",
		"unclosed block":    "---\ntitle: x\nbody without fence\n",
		"empty file":        "",
		"fence only":        "---",
		"text before fence": "intro\n---\ntitle: x\n---\nbody",
		"indented closing":  "---\ntitle: a\n   ---\nbody",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, ok := posts.ParseRecord(raw, "bad.md", fixedNow); ok {
				t.Fatalf("expected %q to be rejected", raw)
			}
		})
	}
}

func TestParseRecordAcceptsTrailingWhitespaceOnFences(t *testing.T) {
	record, ok := posts.ParseRecord("--- \r\ntitle: Spaced\r\n---\t\r\nbody", "spaced.md", fixedNow)
	if !ok {
		t.Fatalf("expected record to parse")
	}
	if record.Title != "Spaced" {
		t.Fatalf("unexpected title %q", record.Title)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World.md":        "hello-world",
		"My  Post -- 2024!!.md": "my-post-2024",
		"__init__.md":           "init",
		"Café Résumé.md":        "caf-r-sum",
		"UPPER_case.md":         "upper-case",
		"!!!.md":                "untitled",
		"react-native-guide.md": "react-native-guide",
		"version.1.2.md":        "version-1-2",
	}
	for filename, want := range cases {
		if got := posts.Slugify(filename); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", filename, got, want)
		}
	}
}

func TestSlugAlphabet(t *testing.T) {
	for _, name := range []string{"A b.md", "--x--.md", "ü.md", "tab\tname.md", "a..b.md"} {
		slug := posts.Slugify(name)
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") || strings.Contains(slug, "--") {
			t.Fatalf("slug %q for %q has stray separators", slug, name)
		}
		for _, r := range slug {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Fatalf("slug %q for %q contains %q", slug, name, r)
			}
		}
	}
}

func TestReadTime(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{strings.Repeat("word ", 400), "2 min read"},
		{strings.Repeat("word ", 401), "3 min read"},
		{"word", "1 min read"},
		{"", "1 min read"},
		{"   \n\t ", "1 min read"},
	}
	for _, tc := range cases {
		if got := posts.ReadTime(tc.body); got != tc.want {
			t.Fatalf("ReadTime(%d chars) = %q, want %q", len(tc.body), got, tc.want)
		}
	}
}

func TestParseFrontMatterLists(t *testing.T) {
	fm := posts.ParseFrontMatter("tags: [a, b, \"c\"]\nempty: []\nquoted: \"[x, 'y']\"\nsparse: [a, , b]\nurl: https://example.com/a\nnocolon\n")

	cases := map[string][]string{
		"tags":   {"a", "b", "c"},
		"empty":  {},
		"quoted": {"x", "y"},
		"sparse": {"a", "b"},
	}
	for key, want := range cases {
		got, ok := fm.List(key)
		if !ok {
			t.Fatalf("expected %s to be a list", key)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s = %#v, want %#v", key, got, want)
		}
	}

	if url, ok := fm.Text("url"); !ok || url != "https://example.com/a" {
		t.Fatalf("expected value split on first colon only, got %q", url)
	}
	if _, ok := fm["nocolon"]; ok {
		t.Fatalf("expected line without colon to be ignored")
	}
	if _, ok := fm["tags"].Text(); ok {
		t.Fatalf("expected list field to refuse Text()")
	}
}

func TestParseFrontMatterSingleQuoteCharacterIsKept(t *testing.T) {
	fm := posts.ParseFrontMatter("title: \"\nother: 'mixed\"")
	if got, _ := fm.Text("title"); got != "\"" {
		t.Fatalf("expected lone quote to survive, got %q", got)
	}
	if got, _ := fm.Text("other"); got != "'mixed\"" {
		t.Fatalf("expected mismatched quotes to survive, got %q", got)
	}
}
