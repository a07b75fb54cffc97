package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieIndexExamples(t *testing.T) {
	ti, err := NewTrieIndex([]string{"air", "bat", "bell", "boy"}, []float64{3, 2, 4, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"bell", "bat"}, ti.TopMatches("b", 2))
	assert.Equal(t, "air", ti.TopMatch("a"))
	assert.Equal(t, []string{}, ti.TopMatches("z", 5))
	assert.Equal(t, []string{}, ti.TopMatches("b", 0))
	assert.Equal(t, 0.0, ti.WeightOf("cat"))
	assert.Equal(t, "bell", ti.TopMatch(""))
	assert.Equal(t, map[string]int{"totalWords": 4, "maxWeight": 4}, ti.Stats())
}

func TestTrieIndexEmptyAndDuplicateWords(t *testing.T) {
	words := []string{"", "go", "go", "gopher"}
	weights := []float64{9, 2, 7, 1}

	ti, err := NewTrieIndex(words, weights)
	require.NoError(t, err)

	assert.Equal(t, 9.0, ti.WeightOf(""))
	assert.Equal(t, 2.0, ti.WeightOf("go"), "first occurrence wins")
	assert.Equal(t, []string{"", "go", "gopher"}, ti.TopMatches("", 5))
	assert.Equal(t, []string{"go", "gopher"}, ti.TopMatches("go", 5))
	assert.Equal(t, 3, ti.Stats()["totalWords"])

	idx, err := Build(words, weights)
	require.NoError(t, err)
	assert.Equal(t, ti.WeightOf("go"), idx.WeightOf("go"))
	assert.Equal(t, ti.WeightOf(""), idx.WeightOf(""))
	assert.Equal(t, ti.TopMatch(""), idx.TopMatch(""))
}
