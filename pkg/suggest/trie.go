package suggest

import (
	"github.com/bastiangx/wordrank/pkg/term"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// TrieIndex answers the same queries as Index from a Patricia trie.
// It keeps the first weight supplied for a repeated word.
type TrieIndex struct {
	trie       *patricia.Trie
	totalWords int
	maxWeight  float64

	hasEmpty    bool
	emptyWeight float64
}

// NewTrieIndex validates its input the same way Build does.
func NewTrieIndex(words []string, weights []float64) (*TrieIndex, error) {
	terms, err := pair(words, weights)
	if err != nil {
		return nil, err
	}

	ti := &TrieIndex{trie: patricia.NewTrie()}
	for _, t := range terms {
		ti.add(t)
	}
	log.Debugf("Built trie with %d words", ti.totalWords)
	return ti, nil
}

func (ti *TrieIndex) add(t term.Term) {
	if t.Word() == "" {
		if ti.hasEmpty {
			return
		}
		ti.hasEmpty, ti.emptyWeight = true, t.Weight()
	} else if !ti.trie.Insert(patricia.Prefix(t.Word()), t.Weight()) {
		return
	}

	ti.totalWords++
	if t.Weight() > ti.maxWeight {
		ti.maxWeight = t.Weight()
	}
}

// visit calls fn for every word starting with prefix, in no particular order.
func (ti *TrieIndex) visit(prefix string, fn func(t term.Term)) {
	if prefix == "" && ti.hasEmpty {
		fn(mustTerm("", ti.emptyWeight))
	}

	visitor := func(p patricia.Prefix, item patricia.Item) error {
		weight, ok := item.(float64)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		fn(mustTerm(string(p), weight))
		return nil
	}

	var err error
	if prefix == "" {
		err = ti.trie.Visit(visitor)
	} else {
		err = ti.trie.VisitSubtree(patricia.Prefix(prefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
}

func (ti *TrieIndex) top(prefix string, k int) []term.Term {
	if k <= 0 {
		return []term.Term{}
	}
	best := newTopK(k)
	ti.visit(prefix, best.offer)
	return best.drain()
}

// TopMatches returns up to k words starting with prefix, ranked like Index.
func (ti *TrieIndex) TopMatches(prefix string, k int) []string {
	ranked := ti.top(prefix, k)
	words := make([]string, len(ranked))
	for i, t := range ranked {
		words[i] = t.Word()
	}
	return words
}

// Suggest is TopMatches with weights attached.
func (ti *TrieIndex) Suggest(prefix string, k int) []Suggestion {
	return toSuggestions(ti.top(prefix, k))
}

// TopMatch returns the highest ranked word starting with prefix, or "".
func (ti *TrieIndex) TopMatch(prefix string) string {
	ranked := ti.top(prefix, 1)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Word()
}

// WeightOf returns the weight of word, or 0 if absent.
func (ti *TrieIndex) WeightOf(word string) float64 {
	if word == "" {
		return ti.emptyWeight
	}
	if weight, ok := ti.trie.Get(patricia.Prefix(word)).(float64); ok {
		return weight
	}
	return 0
}

// Stats returns statistics about the trie
func (ti *TrieIndex) Stats() map[string]int {
	return map[string]int{
		"totalWords": ti.totalWords,
		"maxWeight":  int(ti.maxWeight),
	}
}

// mustTerm rebuilds a term from a weight that was already validated.
func mustTerm(word string, weight float64) term.Term {
	t, err := term.New(word, weight)
	if err != nil {
		panic(err)
	}
	return t
}
