package brain

import "strings"

var DefaultRefusalPhrases = []string{"I don't know", "Sorry"}

// RefusalPolicy classifies answers in which the model declined to answer.
// Matching is a case-insensitive substring test.
type RefusalPolicy struct {
	phrases []string
}

func NewRefusalPolicy(phrases []string) RefusalPolicy {
	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			normalized = append(normalized, p)
		}
	}
	return RefusalPolicy{phrases: normalized}
}

// IsUnanswered reports whether answer matches any refusal phrase. An absent
// answer is not a refusal.
func (r RefusalPolicy) IsUnanswered(answer string) bool {
	if answer == "" {
		return false
	}
	lower := strings.ToLower(answer)
	for _, p := range r.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
