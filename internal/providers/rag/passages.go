package rag

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/docbot/internal/core"
)

var (
	ErrInvalidThreshold = errors.New("similarity threshold must be within [0,1]")
	ErrInvalidLimit     = errors.New("limit must be positive")
)

var htmlTagRe = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)

func validateOptions(opts core.RetrieveOptions) error {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, opts.Threshold)
	}
	if opts.Limit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, opts.Limit)
	}
	return nil
}

// passageRow is a retrieval result on the wire. Similarity is optional:
// indexes that apply the threshold themselves may omit it.
type passageRow struct {
	Content    string   `json:"content"`
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Similarity *float64 `json:"similarity"`
}

// rankPassages drops scored rows under the threshold and caps the result at
// the limit. When every row carries a score they are ordered by similarity
// descending (stable for ties); otherwise the index order is kept.
func rankPassages(rows []passageRow, opts core.RetrieveOptions) []core.Passage {
	ranked := make([]core.Passage, 0, len(rows))
	scored := true
	for _, row := range rows {
		p := core.Passage{
			Content: normalizeContent(row.Content),
			URL:     row.URL,
			Title:   row.Title,
		}
		if row.Similarity == nil {
			scored = false
		} else {
			if *row.Similarity < opts.Threshold {
				continue
			}
			p.Similarity = *row.Similarity
		}
		ranked = append(ranked, p)
	}

	if scored {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Similarity > ranked[j].Similarity
		})
	}

	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked
}

// normalizeContent converts passages that still carry HTML markup into
// plain text. Plain passages are returned untouched.
func normalizeContent(content string) string {
	if !htmlTagRe.MatchString(content) {
		return content
	}
	text, err := html2text.FromString(content, html2text.Options{OmitLinks: true})
	if err != nil {
		return content
	}
	return strings.TrimSpace(text)
}
