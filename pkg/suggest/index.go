package suggest

import (
	"fmt"
	"slices"

	"github.com/bastiangx/wordrank/pkg/term"
	"github.com/charmbracelet/log"
)

// Index is a static autocomplete index over terms sorted by word.
// All terms sharing a prefix form one contiguous run, which two boundary
// searches locate. The index is never mutated after Build and may be read
// from many goroutines.
type Index struct {
	terms     []term.Term
	maxWeight float64
}

// Build pairs words[i] with weights[i] and sorts the result by word.
// Both slices must be non-nil and of equal length, and every weight
// must be non-negative. No index is returned on failure.
func Build(words []string, weights []float64) (*Index, error) {
	terms, err := pair(words, weights)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(terms, term.Compare)

	idx := &Index{terms: terms}
	for _, t := range terms {
		if t.Weight() > idx.maxWeight {
			idx.maxWeight = t.Weight()
		}
	}
	log.Debugf("Built index with %d terms", len(terms))
	return idx, nil
}

func pair(words []string, weights []float64) ([]term.Term, error) {
	if words == nil || weights == nil {
		return nil, fmt.Errorf("%w: words and weights are required", ErrInvalidArgument)
	}
	if len(words) != len(weights) {
		return nil, fmt.Errorf("%w: %d words but %d weights", ErrInvalidArgument, len(words), len(weights))
	}

	terms := make([]term.Term, len(words))
	for i, w := range words {
		t, err := term.New(w, weights[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		terms[i] = t
	}
	return terms, nil
}

// Range returns the inclusive bounds of the run of terms starting with
// prefix, or (-1, -1) when no term does.
func (idx *Index) Range(prefix string) (first, last int) {
	key := term.Key(prefix)
	order := term.PrefixOrder(len(prefix))

	// terms is never nil and order never nil, so the searches cannot fail.
	first, _ = FirstIndexOf(idx.terms, key, order)
	last, _ = LastIndexOf(idx.terms, key, order)
	if first == -1 || last == -1 {
		return -1, -1
	}
	return first, last
}

// TopMatches returns up to k words starting with prefix in descending
// weight order. Equal weights rank the lexicographically larger word first.
func (idx *Index) TopMatches(prefix string, k int) []string {
	ranked := idx.top(prefix, k)
	words := make([]string, len(ranked))
	for i, t := range ranked {
		words[i] = t.Word()
	}
	return words
}

// Suggest is TopMatches with weights attached.
func (idx *Index) Suggest(prefix string, k int) []Suggestion {
	return toSuggestions(idx.top(prefix, k))
}

func (idx *Index) top(prefix string, k int) []term.Term {
	if k <= 0 {
		return []term.Term{}
	}
	first, last := idx.Range(prefix)
	if first == -1 {
		return []term.Term{}
	}

	best := newTopK(k)
	for _, t := range idx.terms[first : last+1] {
		best.offer(t)
	}
	return best.drain()
}

// TopMatch returns the heaviest word starting with prefix, or "" if none does.
// On a tie the later, lexicographically larger word wins.
func (idx *Index) TopMatch(prefix string) string {
	first, last := idx.Range(prefix)
	if first == -1 {
		return ""
	}

	best := first
	for i := first + 1; i <= last; i++ {
		if idx.terms[i].Weight() >= idx.terms[best].Weight() {
			best = i
		}
	}
	return idx.terms[best].Word()
}

// WeightOf returns the weight of word, or 0 if it is not in the index.
// With duplicate words the first supplied one wins.
func (idx *Index) WeightOf(word string) float64 {
	i, _ := FirstIndexOf(idx.terms, term.Key(word), term.Lexicographic)
	if i == -1 {
		return 0
	}
	return idx.terms[i].Weight()
}

// Len returns the number of indexed terms
func (idx *Index) Len() int {
	return len(idx.terms)
}

// Terms returns a copy of the sorted terms
func (idx *Index) Terms() []term.Term {
	return slices.Clone(idx.terms)
}

// Stats returns statistics about the index
func (idx *Index) Stats() map[string]int {
	return map[string]int{
		"totalWords": len(idx.terms),
		"maxWeight":  int(idx.maxWeight),
	}
}

func toSuggestions(terms []term.Term) []Suggestion {
	out := make([]Suggestion, len(terms))
	for i, t := range terms {
		out[i] = Suggestion{Word: t.Word(), Weight: t.Weight()}
	}
	return out
}
