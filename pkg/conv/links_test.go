package conv

import (
	"strings"
	"testing"
)

func TestLinksMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		heading  string
		links    []Link
		expected string
	}{
		{
			name:     "empty",
			heading:  "Sources",
			links:    nil,
			expected: "",
		},
		{
			name:    "titles and bare urls",
			heading: "Sources",
			links: []Link{
				{Title: "Push a model", URL: "https://docs/push"},
				{URL: "https://docs/auth"},
			},
			expected: "**Sources**\n› [Push a model](https://docs/push)\n› [https://docs/auth](https://docs/auth)",
		},
		{
			name:     "brackets escaped",
			heading:  "Sources",
			links:    []Link{{Title: "[beta] API", URL: "https://docs/api"}},
			expected: "**Sources**\n› [\\[beta\\] API](https://docs/api)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinksMarkdown(tt.heading, tt.links)
			if got != tt.expected {
				t.Errorf("LinksMarkdown() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLinksMarkdown_RendersForTelegram(t *testing.T) {
	md := LinksMarkdown("Sources", []Link{{Title: "Docs", URL: "https://example.com/docs"}})
	html := MarkdownToTelegramHTML([]byte(md))

	for _, want := range []string{"<strong>Sources</strong>", `<a href="https://example.com/docs">Docs</a>`} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML %q does not contain %q", html, want)
		}
	}
}
