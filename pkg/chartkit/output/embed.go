package output

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug turns a chart title into a URL path segment: whitespace runs become
// "-" and letters are lowercased. An empty title gives "chart".
func Slug(title string) string {
	if title == "" {
		title = "Chart"
	}
	return strings.ToLower(whitespaceRun.ReplaceAllString(title, "-"))
}

// EmbedCode returns an iframe snippet that embeds the chart served under
// origin, e.g. "https://charts.example.com".
func EmbedCode(origin, title string) string {
	src := strings.TrimRight(origin, "/") + "/embed/" + Slug(title)
	return fmt.Sprintf(`<iframe src="%s" width="800" height="500" frameborder="0"></iframe>`, html.EscapeString(src))
}

// DefaultFileName returns the export file name for a chart title, falling
// back to fallback when the title is empty. ext includes the dot.
func DefaultFileName(title, fallback, ext string) string {
	name := title
	if name == "" {
		name = fallback
	}
	return name + ext
}
