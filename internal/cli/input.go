// Package cli handles interactive prefix queries for debugging and testing an index
package cli

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads one query per line and prints the matches.
//
// A plain line is a prefix and prints its top matches. ":top p" prints the
// single top match for p, ":w word" prints the weight of word and
// ":k n" changes the number of matches shown.
type InputHandler struct {
	completer    suggest.Autocompleter
	suggestLimit int
	showWeights  bool
	reader       io.Reader
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.Autocompleter, limit int, showWeights bool) *InputHandler {
	return NewInputHandlerWithIO(completer, limit, showWeights, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler with explicit input and output
func NewInputHandlerWithIO(completer suggest.Autocompleter, limit int, showWeights bool, r io.Reader, w io.Writer) *InputHandler {
	out := logger.NewWithWriter(w, "")
	out.SetReportTimestamp(false)
	return &InputHandler{
		completer:    completer,
		suggestLimit: limit,
		showWeights:  showWeights,
		reader:       r,
		out:          out,
	}
}

// Start begins the interface loop and returns nil once the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("WordRank CLI")
	h.out.Print("type a prefix and press Enter to see the matches (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.reader)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case ":top":
		h.showTop(arg)
	case ":w":
		h.out.Printf("weight(%q) = %s", arg, utils.FormatWeight(h.completer.WeightOf(arg)))
	case ":k":
		k, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || k < 0 {
			h.out.Errorf("Invalid limit: %q", arg)
			return
		}
		h.suggestLimit = k
		h.out.Printf("showing up to %d matches", k)
	default:
		h.showMatches(strings.TrimSpace(line))
	}
}

func (h *InputHandler) showTop(prefix string) {
	start := time.Now()
	word := h.completer.TopMatch(prefix)
	log.Debugf("Took [ %v ] for top match of '%s'", time.Since(start), prefix)

	if word == "" {
		h.out.Warnf("No match for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("top match for '%s': %s", prefix, word)
}

func (h *InputHandler) showMatches(prefix string) {
	start := time.Now()
	suggestions := h.completer.Suggest(prefix, h.suggestLimit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		if h.showWeights {
			h.out.Printf("%2d. %-40s (weight: %12s)", i+1, s.Word, utils.FormatWeight(s.Weight))
		} else {
			h.out.Printf("%2d. %s", i+1, s.Word)
		}
	}
}
