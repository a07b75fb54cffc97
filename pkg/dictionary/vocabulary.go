// Package dictionary reads (word, weight) vocabularies from text and binary chunk files.
package dictionary

// Vocabulary holds parallel words and weights, in file order.
type Vocabulary struct {
	Words   []string
	Weights []float64
}

func newVocabulary(capacity int) *Vocabulary {
	return &Vocabulary{
		Words:   make([]string, 0, capacity),
		Weights: make([]float64, 0, capacity),
	}
}

// Add appends one entry
func (v *Vocabulary) Add(word string, weight float64) {
	v.Words = append(v.Words, word)
	v.Weights = append(v.Weights, weight)
}

// Len returns the number of entries
func (v *Vocabulary) Len() int {
	return len(v.Words)
}

// Append copies every entry of other after the entries of v
func (v *Vocabulary) Append(other *Vocabulary) {
	v.Words = append(v.Words, other.Words...)
	v.Weights = append(v.Weights, other.Weights...)
}
