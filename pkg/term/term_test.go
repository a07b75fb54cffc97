package term

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTerm(t *testing.T, word string, weight float64) Term {
	t.Helper()
	tm, err := New(word, weight)
	require.NoError(t, err)
	return tm
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		weight  float64
		wantErr bool
	}{
		{"Plain", "bell", 4, false},
		{"ZeroWeight", "air", 0, false},
		{"EmptyWord", "", 1, false},
		{"Negative", "bat", -1, true},
		{"NaN", "boy", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := New(tt.word, tt.weight)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.word, tm.Word())
			assert.Equal(t, tt.weight, tm.Weight())
		})
	}
}

func TestLexicographic(t *testing.T) {
	a := mustTerm(t, "bat", 9)
	b := mustTerm(t, "bell", 1)

	assert.Negative(t, Lexicographic(a, b))
	assert.Positive(t, Lexicographic(b, a))
	assert.Zero(t, Lexicographic(a, mustTerm(t, "bat", 0)))
	assert.Equal(t, Lexicographic(a, b), Compare(a, b))
}

func TestWeightOrder(t *testing.T) {
	light := mustTerm(t, "zebra", 1)
	heavy := mustTerm(t, "apple", 2)

	assert.Negative(t, WeightOrder(light, heavy))
	assert.Positive(t, WeightOrder(heavy, light))
	assert.Zero(t, WeightOrder(light, mustTerm(t, "other", 1)))
}

func TestPrefixOrder(t *testing.T) {
	tests := []struct {
		word string
		key  string
		want int
	}{
		{"bell", "be", 0},
		{"be", "be", 0},
		{"b", "be", -1},
		{"bat", "be", -1},
		{"boy", "be", 1},
		{"anything", "", 0},
		{"", "", 0},
		{"", "a", -1},
		{"app", "apple", -1},
		{"apple", "apple", 0},
		{"apples", "apple", 0},
	}

	for _, tt := range tests {
		order := PrefixOrder(len(tt.key))
		got := order(mustTerm(t, tt.word, 1), Key(tt.key))
		switch {
		case tt.want < 0:
			assert.Negative(t, got, "%q vs %q", tt.word, tt.key)
		case tt.want > 0:
			assert.Positive(t, got, "%q vs %q", tt.word, tt.key)
		default:
			assert.Zero(t, got, "%q vs %q", tt.word, tt.key)
		}
	}
}
