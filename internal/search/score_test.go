package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainmentIdenticalTables(t *testing.T) {
	table := map[string]int{"the": 2, "cat": 1}
	assert.Equal(t, 1.0, containment(table, table))
}

func TestContainmentEmptyQueryTable(t *testing.T) {
	// Nothing searched for, nothing missing: the smoothing constants alone
	assert.Equal(t, 1.0, containment(map[string]int{"word": 3}, map[string]int{}))
}

func TestContainmentMissingItemPenalized(t *testing.T) {
	have := map[string]int{"cat": 1}
	want := map[string]int{"cat": 1, "dog": 1}

	// cat: +1/+1, dog missing: -1/+1 => 1/3
	assert.InDelta(t, 1.0/3, containment(have, want), 1e-12)
}

func TestContainmentOvershootWorseThanUndershoot(t *testing.T) {
	three := map[string]int{"the": 3}
	one := map[string]int{"the": 1}

	undershoot := containment(three, one)
	overshoot := containment(one, three)

	// Both reduce to (1+1)/(1+3); the reversed ratio keeps overshooting
	// from scoring above a clean find
	assert.InDelta(t, 0.5, undershoot, 1e-12)
	assert.InDelta(t, 0.5, overshoot, 1e-12)
	assert.Less(t, overshoot, containment(three, three))
}

func TestLongestSharedRun(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"make", "making", 3},
		{"quick fox", "the quick fox", 9},
		{"abc", "xyz", 0},
		{"", "anything", 0},
		{"same", "same", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, longestSharedRun(tt.a, tt.b), "longestSharedRun(%q, %q)", tt.a, tt.b)
	}
}

func TestLongestSharedRunSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"make", "making"},
		{"the quick fox", "a quick brown fox jumps"},
		{"gun upon gun ha ha", ""},
		{"don john of austria", "død john juan"},
	}
	for _, p := range pairs {
		assert.Equal(t, longestSharedRun(p[0], p[1]), longestSharedRun(p[1], p[0]))
	}
}

func TestMeasureSharedUsesAverageLength(t *testing.T) {
	// "fox" is a perfect substring of the longer line, but dividing by the
	// average length keeps it well below a perfect score
	assert.InDelta(t, 2.0*3/(3+13), measureShared("fox", "the quick fox"), 1e-12)
	assert.Equal(t, 1.0, measureShared("fox", "fox"))
	assert.Equal(t, 0.0, measureShared("", ""))
}

func TestBestSharedPerWordZeroQueryWordsIsNeutral(t *testing.T) {
	candidate := map[string]int{"word": 1}

	// 0.5 rescales to the neutral 0 in [-1, 1]
	assert.Equal(t, 0.5, bestSharedPerWord(candidate, map[string]int{}))
}

func TestBestSharedPerWordPicksBestMatch(t *testing.T) {
	candidate := map[string]int{"making": 1, "gongs": 1}
	query := map[string]int{"make": 1}

	// make vs making shares "mak": 2*3/(4+6)
	assert.InDelta(t, 0.6, bestSharedPerWord(candidate, query), 1e-12)
}

func TestSimilarityReflexive(t *testing.T) {
	lines := []string{
		"White founts falling in the Courts of the sun",
		"gun upon gun, ha! ha!",
		"x",
	}
	for _, line := range lines {
		assert.Equal(t, 1.0, Similarity(NewProfile(line), NewProfile(line)))
	}
}

func TestSimilarityExactShortCircuitBeatsTables(t *testing.T) {
	// Different raw forms, same canonical text: the equality check must fire
	// before any table arithmetic
	a := NewProfile("Hello, World!")
	b := NewProfile("hello world")
	assert.Equal(t, 1.0, Similarity(a, b))
	assert.Equal(t, 1.0, Similarity(b, a))
}

func TestSimilarityAsymmetric(t *testing.T) {
	longer := NewProfile("the cat the dog")
	shorter := NewProfile("the cat")

	// Searching the shorter set inside the longer finds everything; the
	// reverse direction misses "dog" and pays for it
	assert.NotEqual(t, Similarity(longer, shorter), Similarity(shorter, longer))
	assert.Greater(t, Similarity(longer, shorter), Similarity(shorter, longer))
}

func TestSimilarityEmptyQueryAgainstText(t *testing.T) {
	candidate := NewProfile("strong gongs groaning")
	empty := NewProfile("")

	// words 1, runes 1, fullShared -1, wordShared neutral 0
	assert.InDelta(t, 0.25, Similarity(candidate, empty), 1e-12)
}

func TestSimilarityWithinRange(t *testing.T) {
	lines := []string{
		"Dim drums throbbing, in the hills half heard",
		"Where only on a nameless throne a crownless prince has stirred",
		"Don John of Austria is going to the war",
		"gun upon gun ha ha",
		"x y z",
		"",
	}
	for _, a := range lines {
		for _, b := range lines {
			score := Similarity(NewProfile(a), NewProfile(b))
			assert.GreaterOrEqual(t, score, -1.0, "Similarity(%q, %q)", a, b)
			assert.LessOrEqual(t, score, 1.0, "Similarity(%q, %q)", a, b)
		}
	}
}

func TestSimilarityRewardsInflectedForms(t *testing.T) {
	candidate := NewProfile("making merry")
	related := NewProfile("make merry")
	unrelated := NewProfile("xyz vwq")

	assert.Greater(t, Similarity(candidate, related), Similarity(candidate, unrelated))
}
