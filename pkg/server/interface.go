/*
Package server implements msgpack IPC for prefix autocomplete queries.

The server reads a stream of msgpack encoded requests from stdin and writes one
msgpack encoded response per request to stdout. Requests are handled
synchronously, in order, and every response carries the request ID.

# IPC

Every request names an operation in its "op" field:

	{"id": "r1", "op": "c", "p": "ame", "l": 5}   top matches with weights
	{"id": "r2", "op": "t", "p": "ame"}           single top match
	{"id": "r3", "op": "w", "w": "america"}       weight of an exact word
	{"id": "r4", "op": "s"}                       stats and per op latency
	{"id": "r5", "op": "h"}                       health

A completion response lists suggestions heaviest first:

	{"id": "r1", "s": [{"w": "america", "f": 3.1e8}, {"w": "amend", "f": 1.2e5}], "c": 2, "t": 14}

"t" is the lookup time in microseconds. A missing or zero limit uses
server.default_limit and larger limits are clamped to server.max_limit.
Failed requests are answered with a CompletionError carrying a status code.
*/
package server

// Operation codes
const (
	OpComplete = "c"
	OpTop      = "t"
	OpWeight   = "w"
	OpStats    = "s"
	OpHealth   = "h"
)

// Request is the single request envelope; unused fields stay empty
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Word   string `msgpack:"w,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word   string  `msgpack:"w"`
	Weight float64 `msgpack:"f"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// TopMatchResponse holds the single best word, empty when nothing matched
type TopMatchResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	TimeTaken int64  `msgpack:"t"`
}

// WeightResponse holds the weight of a word, 0 when it is unknown
type WeightResponse struct {
	ID     string  `msgpack:"id"`
	Word   string  `msgpack:"w"`
	Weight float64 `msgpack:"f"`
}

// TimerStats summarizes the latency of one operation in microseconds
type TimerStats struct {
	Count int64   `msgpack:"count"`
	Mean  float64 `msgpack:"mean_us"`
	P99   float64 `msgpack:"p99_us"`
	Max   int64   `msgpack:"max_us"`
}

// StatsResponse - vocabulary and latency statistics
type StatsResponse struct {
	ID       string                `msgpack:"id"`
	Stats    map[string]int        `msgpack:"stats"`
	Timers   map[string]TimerStats `msgpack:"timers"`
	Requests int                   `msgpack:"requests"`
}

// StatusResponse answers health checks and signals readiness
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
