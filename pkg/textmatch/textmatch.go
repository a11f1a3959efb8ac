// Package textmatch provides token-overlap similarity scoring for free-text
// fields such as titles and descriptions.
package textmatch

import "strings"

// minTokenLength is the shortest token considered meaningful. Shorter tokens
// ("a", "of", "my") carry no matching signal and are discarded.
const minTokenLength = 3

// Similarity returns a score in [0, 1] measuring how much two strings overlap.
//
// Both inputs are lowercased and trimmed. An empty input on either side scores
// 0; identical normalized inputs score 1. Otherwise each input is split on
// whitespace into a set of tokens, and a token counts as shared when it
// contains or is contained by any token from the other side. The score is the
// shared count divided by the larger set size.
func Similarity(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)

	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return 1
	}

	tokensA := tokenize(a)
	tokensB := tokenize(b)

	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shared := 0
	for _, ta := range tokensA {
		if containsToken(tokensB, ta) {
			shared++
		}
	}

	score := float64(shared) / float64(max(len(tokensA), len(tokensB)))
	return clamp(score)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenize splits s on whitespace and returns the distinct tokens at least
// minTokenLength runes long, preserving first-seen order.
func tokenize(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))

	for _, f := range fields {
		if len([]rune(f)) < minTokenLength {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}

	return tokens
}

func containsToken(tokens []string, t string) bool {
	for _, other := range tokens {
		if strings.Contains(other, t) || strings.Contains(t, other) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
