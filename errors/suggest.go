package errors

import (
	"sort"
	"strings"
)

// MaxSuggestionDistance is the edit distance beyond which a candidate is
// never offered, regardless of target length.
const MaxSuggestionDistance = 3

// MaxSuggestions caps how many candidates a single hint may carry.
const MaxSuggestions = 3

// Suggestion is a candidate correction paired with its edit distance
// from the misspelled input.
type Suggestion struct {
	Value    string
	Distance int
}

// suggestionThreshold scales the allowed edit distance with the target
// length: a two-letter identifier within distance 3 of "if" would match
// most of the keyword table.
func suggestionThreshold(target string) int {
	switch {
	case len(target) <= 3:
		return 1
	case len(target) <= 5:
		return 2
	default:
		return MaxSuggestionDistance
	}
}

// SuggestSimilar returns the candidates closest to target by edit
// distance, nearest first and ties broken alphabetically, up to
// MaxSuggestions. Comparison is case-insensitive; exact matches are
// excluded since they need no correcting.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if len(target) == 0 || len(candidates) == 0 {
		return nil
	}

	target = strings.ToLower(target)
	threshold := suggestionThreshold(target)

	var suggestions []Suggestion
	for _, candidate := range candidates {
		if candidate == "" || strings.ToLower(candidate) == target {
			continue
		}
		dist := levenshteinDistance(target, strings.ToLower(candidate))
		if dist <= threshold {
			suggestions = append(suggestions, Suggestion{
				Value:    candidate,
				Distance: dist,
			})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Value < suggestions[j].Value
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions renders suggestions as a "Did you mean" hint, or ""
// when there is nothing to offer.
func FormatSuggestions(suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) == 1 {
		return "Did you mean '" + suggestions[0].Value + "'?"
	}
	var b strings.Builder
	b.WriteString("Did you mean one of: ")
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'")
		b.WriteString(s.Value)
		b.WriteString("'")
	}
	b.WriteString("?")
	return b.String()
}

// levenshteinDistance computes the edit distance between two strings,
// compared rune by rune. Only two rows of the distance matrix are kept.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	aRunes := []rune(a)
	bRunes := []rune(b)

	// Iterate over the longer string so the rows stay short.
	if len(aRunes) > len(bRunes) {
		aRunes, bRunes = bRunes, aRunes
	}

	lenA := len(aRunes)
	lenB := len(bRunes)

	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenA]
}
