package suggest

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/bastiangx/wordrank/pkg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedTerms(t *testing.T, words ...string) []term.Term {
	t.Helper()
	idx, err := Build(words, make([]float64, len(words)))
	require.NoError(t, err)
	return idx.Terms()
}

// counting wraps a comparator and counts its calls.
func counting(cmp term.Comparator, calls *int) term.Comparator {
	return func(a, b term.Term) int {
		*calls++
		return cmp(a, b)
	}
}

func TestBoundarySearch(t *testing.T) {
	terms := sortedTerms(t, "air", "bat", "bell", "boy", "bb", "cat")
	// air bat bb bell boy cat

	tests := []struct {
		prefix      string
		first, last int
	}{
		{"b", 1, 4},
		{"be", 3, 3},
		{"a", 0, 0},
		{"c", 5, 5},
		{"", 0, 5},
		{"z", -1, -1},
		{"0", -1, -1},
		{"bz", -1, -1},
		{"bells", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			order := term.PrefixOrder(len(tt.prefix))
			first, err := FirstIndexOf(terms, term.Key(tt.prefix), order)
			require.NoError(t, err)
			last, err := LastIndexOf(terms, term.Key(tt.prefix), order)
			require.NoError(t, err)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestBoundarySearchInvalid(t *testing.T) {
	terms := sortedTerms(t, "a")

	_, err := FirstIndexOf(nil, term.Key("a"), term.Lexicographic)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = LastIndexOf(nil, term.Key("a"), term.Lexicographic)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = FirstIndexOf(terms, term.Key("a"), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = LastIndexOf(terms, term.Key("a"), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestBoundarySearchEmpty(t *testing.T) {
	calls := 0
	cmp := counting(term.Lexicographic, &calls)

	first, err := FirstIndexOf([]term.Term{}, term.Key("a"), cmp)
	require.NoError(t, err)
	last, err := LastIndexOf([]term.Term{}, term.Key("a"), cmp)
	require.NoError(t, err)

	assert.Equal(t, -1, first)
	assert.Equal(t, -1, last)
	assert.Zero(t, calls)
}

func TestBoundarySearchComparatorBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 31, 32, 33, 100, 1000, 1025} {
		words := make([]string, n)
		for i := range words {
			// three words per prefix so runs have real width
			words[i] = fmt.Sprintf("w%05d-%d", i/3, i%3)
		}
		terms := sortedTerms(t, words...)
		limit := 1 + int(math.Ceil(math.Log2(float64(n))))

		probes := []string{"w", "w00000", words[n/2][:6], words[n-1][:6], "v", "x", "w99999"}
		for _, p := range probes {
			order := term.PrefixOrder(len(p))

			calls := 0
			_, err := FirstIndexOf(terms, term.Key(p), counting(order, &calls))
			require.NoError(t, err)
			assert.LessOrEqual(t, calls, limit, "first n=%d prefix=%q", n, p)

			calls = 0
			_, err = LastIndexOf(terms, term.Key(p), counting(order, &calls))
			require.NoError(t, err)
			assert.LessOrEqual(t, calls, limit, "last n=%d prefix=%q", n, p)
		}
	}
}
