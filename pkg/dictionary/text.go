package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses a text dictionary. Each line holds a weight, a tab and
// the word, which may itself contain spaces. An optional first line holding
// only the entry count is skipped. Blank lines are ignored.
func ReadText(r io.Reader, name string) (*Vocabulary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	vocab := newVocabulary(0)
	lineNo := 0
	seenContent := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !seenContent && isCountHeader(trimmed) {
			seenContent = true
			if n, _ := strconv.Atoi(trimmed); n <= maxChunkEntries {
				vocab = newVocabulary(n)
			}
			continue
		}
		seenContent = true

		word, weight, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		vocab.Add(word, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return vocab, nil
}

func isCountHeader(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

func parseLine(line string) (string, float64, error) {
	line = strings.TrimLeft(line, " ")

	var weightField, word string
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		weightField, word = line[:i], line[i+1:]
	} else if fields := strings.SplitN(line, " ", 2); len(fields) == 2 {
		weightField, word = fields[0], strings.TrimLeft(fields[1], " ")
	} else {
		return "", 0, fmt.Errorf("missing word after weight %q", line)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(weightField), 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad weight %q: %w", weightField, err)
	}
	if weight < 0 {
		return "", 0, fmt.Errorf("negative weight %v for %q", weight, word)
	}
	return word, weight, nil
}
