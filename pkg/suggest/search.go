package suggest

import (
	"fmt"

	"github.com/bastiangx/wordrank/pkg/term"
)

// FirstIndexOf returns the first index i for which cmp considers a[i] equal
// to key, or -1. The slice must be sorted under cmp.
// It calls cmp at most 1+ceil(log2(len(a))) times.
func FirstIndexOf(a []term.Term, key term.Term, cmp term.Comparator) (int, error) {
	if a == nil || cmp == nil {
		return -1, fmt.Errorf("%w: nil terms or comparator", ErrInvalidArgument)
	}
	if len(a) == 0 {
		return -1, nil
	}

	// (low, high] always holds the first match, if any.
	low, high := -1, len(a)-1
	for low+1 != high {
		mid := (low + high) / 2
		if cmp(a[mid], key) < 0 {
			low = mid
		} else {
			high = mid
		}
	}

	if cmp(a[high], key) == 0 {
		return high, nil
	}
	return -1, nil
}

// LastIndexOf mirrors FirstIndexOf and returns the last equal index, or -1.
func LastIndexOf(a []term.Term, key term.Term, cmp term.Comparator) (int, error) {
	if a == nil || cmp == nil {
		return -1, fmt.Errorf("%w: nil terms or comparator", ErrInvalidArgument)
	}
	if len(a) == 0 {
		return -1, nil
	}

	// [low, high) always holds the last match, if any.
	low, high := 0, len(a)
	for low+1 != high {
		mid := (low + high) / 2
		if cmp(a[mid], key) <= 0 {
			low = mid
		} else {
			high = mid
		}
	}

	if cmp(a[low], key) == 0 {
		return low, nil
	}
	return -1, nil
}
