package agent

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/docbot/internal/core"
)

const maxQuestionLen = 2000

// sanitizeHistory drops empty turns and any assistant turns left at the
// start of the window, so the folded history always opens with a question.
func sanitizeHistory(turns []core.Turn) []core.Turn {
	var out []core.Turn
	for _, t := range turns {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		if len(out) == 0 && t.Role != core.RoleUser {
			continue
		}
		out = append(out, t)
	}
	return out
}

// truncate keeps the head and tail of an oversized question.
func truncate(input string) string {
	if utf8.RuneCountInString(input) <= maxQuestionLen {
		return input
	}

	runes := []rune(input)
	head := string(runes[:500])
	tail := string(runes[len(runes)-(maxQuestionLen-500):])
	return fmt.Sprintf("%s\n\n... [TRUNCATED %d chars] ...\n\n%s", head, len(runes)-maxQuestionLen, tail)
}
