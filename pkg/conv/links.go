package conv

import (
	"fmt"
	"strings"
)

type Link struct {
	Title string
	URL   string
}

var linkTextEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`)

// LinksMarkdown renders a titled list of links, one per line. Links without
// a title show their URL. Returns "" for an empty list.
func LinksMarkdown(heading string, links []Link) string {
	if len(links) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n", heading)
	for i, l := range links {
		text := l.Title
		if text == "" {
			text = l.URL
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "› [%s](%s)", linkTextEscaper.Replace(text), l.URL)
	}
	return sb.String()
}
