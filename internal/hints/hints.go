// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import "strings"

// maxSuggestDistance bounds how different a name may be from a known one
// before a suggestion becomes noise.
const maxSuggestDistance = 2

// ForFieldName suggests the closest recognized field name for a
// misspelled one. Returns "" when nothing is close enough.
func ForFieldName(name string, known []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, k := range known {
		if d := distance(strings.ToLower(name), strings.ToLower(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best == "" {
		return ""
	}
	return format("did you mean " + best + "?")
}

// ForConfigNotFound returns a hint listing where a manifest was searched
// for and how to point at one explicitly.
func ForConfigNotFound(searched []string) string {
	hint := "use --config /path/to/manifest.yaml"
	if len(searched) > 0 {
		hint += " (searched " + strings.Join(searched, ", ") + ")"
	}
	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// distance is the Levenshtein edit distance between a and b.
func distance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
