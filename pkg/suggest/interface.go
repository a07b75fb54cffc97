// Package suggest is the core, answering prefix queries over a sorted vocabulary
// with two boundary searches and a bounded top-k selection.
package suggest

import "github.com/bastiangx/wordrank/pkg/term"

// ErrInvalidArgument is the error every failed precondition wraps.
var ErrInvalidArgument = term.ErrInvalidArgument

// Suggestion is a ranked match returned to the server and CLI.
type Suggestion struct {
	Word   string
	Weight float64
}

// Autocompleter defines the query surface shared by the index engines
type Autocompleter interface {
	// TopMatches returns up to k words starting with prefix, heaviest first
	TopMatches(prefix string, k int) []string

	// TopMatch returns the heaviest word starting with prefix, or ""
	TopMatch(prefix string) string

	// WeightOf returns the weight of an exact word, or 0
	WeightOf(word string) float64

	// Suggest is TopMatches with the weights attached
	Suggest(prefix string, k int) []Suggestion

	// Stats returns statistics about the loaded vocabulary
	Stats() map[string]int
}

var (
	_ Autocompleter = (*Index)(nil)
	_ Autocompleter = (*TrieIndex)(nil)
)
