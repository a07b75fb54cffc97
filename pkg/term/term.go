// Package term holds the weighted dictionary entry and the orderings used to sort and search it.
package term

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is returned when a caller breaks a precondition:
// a negative weight, an absent input or mismatched input lengths.
var ErrInvalidArgument = errors.New("invalid argument")

// Term is an immutable (word, weight) pair.
type Term struct {
	word   string
	weight float64
}

// New creates a Term. The weight must be a non-negative number.
func New(word string, weight float64) (Term, error) {
	if weight < 0 || math.IsNaN(weight) {
		return Term{}, fmt.Errorf("%w: negative weight %v for %q", ErrInvalidArgument, weight, word)
	}
	return Term{word: word, weight: weight}, nil
}

// Key builds a search key for prefix lookups. Its weight is never read.
func Key(prefix string) Term {
	return Term{word: prefix}
}

// Word returns the term text
func (t Term) Word() string { return t.word }

// Weight returns the term weight
func (t Term) Weight() float64 { return t.weight }

func (t Term) String() string {
	return fmt.Sprintf("%v\t%s", t.weight, t.word)
}

// Comparator orders two terms, returning a negative number, zero or a positive number.
type Comparator func(a, b Term) int

// Lexicographic compares words byte by byte.
func Lexicographic(a, b Term) int {
	return strings.Compare(a.word, b.word)
}

// Compare is the default ordering, used to sort an index at build time.
func Compare(a, b Term) int {
	return Lexicographic(a, b)
}

// WeightOrder compares by weight, ascending.
func WeightOrder(a, b Term) int {
	return cmp.Compare(a.weight, b.weight)
}

// PrefixOrder compares only the first r bytes of each word.
// A word shorter than r is compared whole, so it sorts below any
// r-byte key it is a prefix of and never equals it.
func PrefixOrder(r int) Comparator {
	if r < 0 {
		r = 0
	}
	return func(a, b Term) int {
		return strings.Compare(head(a.word, r), head(b.word, r))
	}
}

func head(s string, r int) string {
	if len(s) <= r {
		return s
	}
	return s[:r]
}
