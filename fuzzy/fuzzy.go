// Package fuzzy implements the typo-tolerant keyword matching the rule
// engine classifies user input with: a substring fast path plus a
// bounded Levenshtein comparison per input token.
package fuzzy

import (
	"regexp"
	"strings"
)

var tokenSplit = regexp.MustCompile(`[\s,.\-]+`)

// Distance is the classic dynamic-programming Levenshtein edit
// distance (insert, delete, substitute, unit cost each). Operates on
// runes so Bengali keywords are measured correctly.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := 0; j <= len(ra); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

// IsFuzzyMatch reports whether the input matches any keyword, either by
// substring containment or by per-token edit distance. Keywords longer
// than 5 runes tolerate 2 edits, shorter ones only 1; tokens and
// keywords under 3 runes never fuzzy-match so short noise words cannot
// trigger false positives.
func IsFuzzyMatch(input string, keywords []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	words := tokenSplit.Split(normalized, -1)

	for _, keyword := range keywords {
		k := strings.ToLower(keyword)
		if k == "" {
			continue
		}

		if strings.Contains(normalized, k) {
			return true
		}

		kLen := len([]rune(k))
		if kLen < 3 {
			continue
		}
		threshold := 1
		if kLen > 5 {
			threshold = 2
		}

		for _, word := range words {
			if len([]rune(word)) < 3 {
				continue
			}
			if Distance(word, k) <= threshold {
				return true
			}
		}
	}
	return false
}
