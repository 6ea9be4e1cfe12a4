package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is a single input text read from a batch file
type Entry struct {
	Line int    // 1-based line number in the batch file
	Text string // Text to spell, surrounding whitespace removed
}

// ReadBatchFile reads one input text per line from a file.
// Blank lines and lines starting with '#' are skipped. Inner spaces are
// kept since they are part of the text to spell.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch splits batch content into entries
func ParseBatch(content string) []Entry {
	var entries []Entry

	for i, line := range strings.Split(content, "\n") {
		line = trimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Line: i + 1, Text: line})
	}

	return entries
}

// trimSpace trims surrounding blanks and the carriage return of CRLF files
func trimSpace(s string) string {
	return strings.Trim(s, " \t\r")
}
