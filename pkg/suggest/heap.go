package suggest

import (
	"container/heap"
	"strings"

	"github.com/bastiangx/wordrank/pkg/term"
)

// outranks reports whether a ranks above b: heavier first, and on equal
// weight the lexicographically larger word first. TopMatch keeps the later
// word of the sorted run on a tie, so both paths agree on the top result.
func outranks(a, b term.Term) bool {
	if c := term.WeightOrder(a, b); c != 0 {
		return c > 0
	}
	return strings.Compare(a.Word(), b.Word()) > 0
}

// rankHeap is a min-heap with the lowest ranked term on top, making it the
// first to be evicted once the heap grows past its capacity.
type rankHeap []term.Term

func (h rankHeap) Len() int           { return len(h) }
func (h rankHeap) Less(i, j int) bool { return outranks(h[j], h[i]) }
func (h rankHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankHeap) Push(x any) { *h = append(*h, x.(term.Term)) }

func (h *rankHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK keeps the k highest ranked terms offered to it.
type topK struct {
	k int
	h rankHeap
}

func newTopK(k int) *topK {
	capacity := k
	if capacity > 64 {
		capacity = 64
	}
	return &topK{k: k, h: make(rankHeap, 0, capacity+1)}
}

func (t *topK) offer(tm term.Term) {
	if t.k <= 0 {
		return
	}
	heap.Push(&t.h, tm)
	if t.h.Len() > t.k {
		heap.Pop(&t.h)
	}
}

// drain empties the heap and returns its terms, highest ranked first.
func (t *topK) drain() []term.Term {
	out := make([]term.Term, t.h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(term.Term)
	}
	return out
}
