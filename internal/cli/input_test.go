package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, showWeights bool) string {
	t.Helper()
	idx, err := suggest.Build([]string{"air", "bat", "bell", "boy"}, []float64{3, 2, 4, 1500})
	require.NoError(t, err)

	var out bytes.Buffer
	h := NewInputHandlerWithIO(idx, 2, showWeights, strings.NewReader(input), &out)
	require.NoError(t, h.Start())
	return out.String()
}

func TestInputHandlerMatches(t *testing.T) {
	out := run(t, "b\n\nzz\n", true)

	assert.Contains(t, out, "Found 2 suggestions for prefix 'b'")
	assert.Contains(t, out, "1. boy")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "2. bell")
	assert.NotContains(t, out, "bat")
	assert.Contains(t, out, "No suggestions found for prefix: 'zz'")
}

func TestInputHandlerCommands(t *testing.T) {
	out := run(t, ":top a\n:top q\n:w bell\n:w cat\n:k 3\nb\n:k x\n", false)

	assert.Contains(t, out, "top match for 'a': air")
	assert.Contains(t, out, "No match for prefix: 'q'")
	assert.Contains(t, out, `weight("bell") = 4`)
	assert.Contains(t, out, `weight("cat") = 0`)
	assert.Contains(t, out, "3. bat")
	assert.NotContains(t, out, "weight:")
	assert.Contains(t, out, "Invalid limit")
}
