package posts

import (
	"fmt"
	"strings"
)

// FieldKind distinguishes scalar and list front-matter values.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldList
)

// FieldValue is a front-matter value: either a string or a list of strings.
type FieldValue struct {
	Kind  FieldKind
	text  string
	items []string
}

// TextValue builds a scalar value.
func TextValue(text string) FieldValue {
	return FieldValue{Kind: FieldText, text: text}
}

// ListValue builds a list value.
func ListValue(items ...string) FieldValue {
	return FieldValue{Kind: FieldList, items: append([]string{}, items...)}
}

// Text returns the scalar value and whether the field holds one.
func (v FieldValue) Text() (string, bool) {
	if v.Kind != FieldText {
		return "", false
	}
	return v.text, true
}

// List returns a copy of the list value and whether the field holds one.
func (v FieldValue) List() ([]string, bool) {
	if v.Kind != FieldList {
		return nil, false
	}
	return append([]string{}, v.items...), true
}

// FrontMatter maps keys of the fenced header block to their values.
type FrontMatter map[string]FieldValue

// Text returns the non-empty scalar stored under key.
func (fm FrontMatter) Text(key string) (string, bool) {
	value, ok := fm[key]
	if !ok {
		return "", false
	}
	text, ok := value.Text()
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// List returns the list stored under key.
func (fm FrontMatter) List(key string) ([]string, bool) {
	value, ok := fm[key]
	if !ok {
		return nil, false
	}
	return value.List()
}

// ParseFrontMatter reads "key: value" lines. Lines without a colon are
// ignored, the value may be wrapped in one pair of matching quotes, and a
// value wrapped in brackets becomes a comma separated list. Later keys
// replace earlier ones.
func ParseFrontMatter(block string) FrontMatter {
	fm := FrontMatter{}
	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fm[key] = parseFieldValue(strings.TrimSpace(value))
	}
	return fm
}

func parseFieldValue(value string) FieldValue {
	value = dequote(value)
	if len(value) >= 2 && strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		return FieldValue{Kind: FieldList, items: splitList(value[1 : len(value)-1])}
	}
	return TextValue(value)
}

func dequote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' || first == '\'') && first == last {
		return value[1 : len(value)-1]
	}
	return value
}

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

func splitList(inner string) []string {
	items := []string{}
	for _, part := range strings.Split(inner, ",") {
		item := quoteStripper.Replace(strings.TrimSpace(part))
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// unmarshalFrontMatter adapts ParseFrontMatter to the frontmatter package's
// decoder signature.
func unmarshalFrontMatter(data []byte, v any) error {
	target, ok := v.(*FrontMatter)
	if !ok || target == nil {
		return fmt.Errorf("posts: unsupported front matter target %T", v)
	}
	*target = ParseFrontMatter(string(data))
	return nil
}
