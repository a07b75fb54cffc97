package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/rcrowley/go-metrics"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for autocomplete queries
type Server struct {
	completer suggest.Autocompleter
	config    *config.Config
	decoder   *msgpack.Decoder
	writer    *bufio.Writer
	encoder   *msgpack.Encoder
	logger    *log.Logger

	registry     metrics.Registry
	timers       map[string]metrics.Timer
	requestCount int
}

// NewServer creates a server speaking over stdin/stdout
func NewServer(completer suggest.Autocompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(completer suggest.Autocompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)

	s := &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
		logger:    logger.New("server"),
		registry:  metrics.NewRegistry(),
		timers:    make(map[string]metrics.Timer),
	}
	for _, op := range []string{OpComplete, OpTop, OpWeight} {
		s.timers[op] = metrics.NewRegisteredTimer(opName(op), s.registry)
	}
	return s
}

func opName(op string) string {
	switch op {
	case OpComplete:
		return "complete"
	case OpTop:
		return "top"
	case OpWeight:
		return "weight"
	case OpStats:
		return "stats"
	case OpHealth:
		return "health"
	}
	return op
}

// Start signals readiness and then serves requests until the input ends.
// A request that cannot be decoded ends the stream, as the decoder cannot
// find the start of the next one.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("decoding request: %w", err)
		}

		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the op code. Only write failures are returned.
func (s *Server) handleRequest(req Request) error {
	s.requestCount++
	s.logger.Debug("Request", "id", req.ID, "op", req.Op, "prefix", req.Prefix)

	switch req.Op {
	case OpComplete:
		return s.handleComplete(req)
	case OpTop:
		return s.handleTop(req)
	case OpWeight:
		return s.handleWeight(req)
	case OpStats:
		return s.send(s.stats(req.ID))
	case OpHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), 400)
	}
}

// checkPrefix returns a non-empty message when the prefix is rejected
func (s *Server) checkPrefix(prefix string) string {
	if maxLen := s.config.Server.MaxPrefix; maxLen > 0 && len(prefix) > maxLen {
		return fmt.Sprintf("prefix exceeds maximum length of %d bytes", maxLen)
	}
	return ""
}

// limitFor applies the configured default and ceiling to a requested limit
func (s *Server) limitFor(requested int) (int, error) {
	switch {
	case requested < 0:
		return 0, fmt.Errorf("limit must not be negative, got %d", requested)
	case requested == 0:
		return s.config.Server.DefaultLimit, nil
	case requested > s.config.Server.MaxLimit:
		return s.config.Server.MaxLimit, nil
	}
	return requested, nil
}

func (s *Server) handleComplete(req Request) error {
	if msg := s.checkPrefix(req.Prefix); msg != "" {
		return s.sendError(req.ID, msg, 400)
	}
	limit, err := s.limitFor(req.Limit)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}

	start := time.Now()
	suggestions := s.completer.Suggest(req.Prefix, limit)
	elapsed := time.Since(start)
	s.timers[OpComplete].Update(elapsed)

	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{Word: sg.Word, Weight: sg.Weight}
	}
	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleTop(req Request) error {
	if msg := s.checkPrefix(req.Prefix); msg != "" {
		return s.sendError(req.ID, msg, 400)
	}

	start := time.Now()
	word := s.completer.TopMatch(req.Prefix)
	elapsed := time.Since(start)
	s.timers[OpTop].Update(elapsed)

	return s.send(TopMatchResponse{ID: req.ID, Word: word, TimeTaken: elapsed.Microseconds()})
}

func (s *Server) handleWeight(req Request) error {
	start := time.Now()
	weight := s.completer.WeightOf(req.Word)
	s.timers[OpWeight].UpdateSince(start)

	return s.send(WeightResponse{ID: req.ID, Word: req.Word, Weight: weight})
}

func (s *Server) stats(id string) StatsResponse {
	timers := make(map[string]TimerStats, len(s.timers))
	s.registry.Each(func(name string, m any) {
		t, ok := m.(metrics.Timer)
		if !ok {
			return
		}
		snap := t.Snapshot()
		timers[name] = TimerStats{
			Count: snap.Count(),
			Mean:  snap.Mean() / float64(time.Microsecond),
			P99:   snap.Percentile(0.99) / float64(time.Microsecond),
			Max:   snap.Max() / int64(time.Microsecond),
		}
	})
	return StatsResponse{
		ID:       id,
		Stats:    s.completer.Stats(),
		Timers:   timers,
		Requests: s.requestCount,
	}
}

// TimerNames lists the registered latency timers, sorted
func (s *Server) TimerNames() []string {
	var names []string
	s.registry.Each(func(name string, _ any) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

// send encodes one response and flushes it so the client sees it immediately
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	s.logger.Debug("Request failed", "id", id, "error", message, "code", code)
	return s.send(CompletionError{ID: id, Error: message, Code: code})
}
