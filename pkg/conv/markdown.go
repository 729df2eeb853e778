package conv

import (
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	tgPolicy   = telegramPolicy()
)

// telegramPolicy allows only the tags listed in
// https://core.telegram.org/bots/api#html-style
func telegramPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	return p
}

// MarkdownToTelegramHTML renders an answer for Telegram. Headings become
// bold lines and list items get explicit markers, since Telegram has no
// tags for either.
func MarkdownToTelegramHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: telegramNodeHook,
	})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return string(tgPolicy.SanitizeBytes(unsafeHTML))
}

func telegramNodeHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		if entering {
			io.WriteString(w, "<b>")
		} else {
			io.WriteString(w, "</b>\n")
		}
		return ast.GoToNext, true
	case *ast.ListItem:
		if entering {
			io.WriteString(w, listMarker(n))
		} else {
			io.WriteString(w, "\n")
		}
		return ast.GoToNext, true
	}
	return ast.GoToNext, false
}

func listMarker(item *ast.ListItem) string {
	if item.ListFlags&ast.ListTypeOrdered == 0 {
		return "• "
	}

	num := 1
	if list, ok := item.Parent.(*ast.List); ok && list.Start > 0 {
		num = list.Start
	}
	for _, sibling := range item.Parent.GetChildren() {
		if sibling == item {
			break
		}
		num++
	}
	return fmt.Sprintf("%d. ", num)
}
