package errors

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

var keywords = []string{
	"as", "const", "default", "else", "export", "false", "from",
	"function", "if", "import", "let", "new", "null", "return",
	"true", "typeof", "undefined", "var",
}

func TestSuggestSimilar(t *testing.T) {
	suggestions := SuggestSimilar("retrun", keywords)
	assert.True(t, len(suggestions) >= 1)
	assert.Equal(t, "return", suggestions[0].Value)

	suggestions = SuggestSimilar("cosnt", keywords)
	assert.True(t, len(suggestions) >= 1)
	assert.Equal(t, "const", suggestions[0].Value)

	// Nothing close enough
	suggestions = SuggestSimilar("xyzzy", keywords)
	assert.Len(t, suggestions, 0)

	// Exact matches are not suggested
	suggestions = SuggestSimilar("return", keywords)
	for _, s := range suggestions {
		assert.NotEqual(t, "return", s.Value)
	}
}

func TestSuggestSimilarEmpty(t *testing.T) {
	assert.Nil(t, SuggestSimilar("", keywords))
	assert.Nil(t, SuggestSimilar("return", nil))
}

func TestSuggestSimilarShortWords(t *testing.T) {
	// Short targets use a tighter threshold
	suggestions := SuggestSimilar("iff", keywords)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "if", suggestions[0].Value)
}

func TestFormatSuggestions(t *testing.T) {
	assert.Equal(t, "", FormatSuggestions(nil))

	one := []Suggestion{{Value: "return", Distance: 1}}
	assert.Equal(t, "Did you mean 'return'?", FormatSuggestions(one))

	two := []Suggestion{{Value: "let", Distance: 1}, {Value: "new", Distance: 2}}
	assert.Equal(t, "Did you mean one of: 'let', 'new'?", FormatSuggestions(two))
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"const", "cosnt", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levenshteinDistance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
