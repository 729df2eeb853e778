package command

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxQuoteLen keeps /unanswered listings readable in chat.
const maxQuoteLen = 280

// ResponseFormatter renders command replies as chat Markdown.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("📘 **%s**\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ %s\n", message)
}

func (f *ResponseFormatter) Error(operation string, err error) string {
	return fmt.Sprintf("❌ **/%s failed**: %s\n", operation, err)
}

func (f *ResponseFormatter) Label(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(usage string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", usage)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "› %s\n", item)
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("**Tip**: %s\n", text)
}

// Quote renders text as a Markdown blockquote, shortened to maxQuoteLen
// runes.
func (f *ResponseFormatter) Quote(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > maxQuoteLen {
		text = string([]rune(text)[:maxQuoteLen]) + "…"
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
