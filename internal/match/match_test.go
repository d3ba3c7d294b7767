package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, distance("section", "section"))
	assert.Equal(t, 7, distance("", "section"))
	assert.Equal(t, 4, distance("text", ""))
	assert.Equal(t, 1, distance("secton", "section"))
	assert.Equal(t, 3, distance("kitten", "sitting"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("page", "page"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abcd", "wxyz"), 1e-9)
}

func TestSuggestKinds(t *testing.T) {
	known := []string{"page", "section", "headline", "text", "image", "table", "table-row"}

	got := SuggestKinds("headlin", known, 3)
	assert.Equal(t, []string{"headline"}, got[:1])

	got = SuggestKinds("tabel", known, 3)
	assert.Contains(t, got, "table")
	assert.LessOrEqual(t, len(got), 3)
}

func TestSuggestKindsDropsGarbage(t *testing.T) {
	known := []string{"page", "section", "headline"}
	assert.Empty(t, SuggestKinds("qqqqqqqqqqqqqqqq", known, 3))
	assert.Empty(t, SuggestKinds("x", nil, 3))
	assert.Empty(t, SuggestKinds("page", known, 0))
}

func TestSuggestKindsDeterministicTies(t *testing.T) {
	known := []string{"list", "lost", "last"}
	got := SuggestKinds("lust", known, 2)
	assert.Equal(t, []string{"last", "list"}, got)
}
