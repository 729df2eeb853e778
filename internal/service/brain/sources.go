package brain

import "github.com/sandevgo/docbot/internal/core"

// Sources deduplicates passages into links, keyed by title (or url when the
// passage has no title). The first occurrence wins and order is kept.
func Sources(passages []core.Passage) []core.Source {
	seen := make(map[string]struct{}, len(passages))
	sources := make([]core.Source, 0, len(passages))

	for _, p := range passages {
		key := p.Title
		if key == "" {
			key = p.URL
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sources = append(sources, core.Source{Title: p.Title, URL: p.URL})
	}
	return sources
}
