// Package batch reads input files for headless batch translation.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one text to translate, with its line number in the source file
type Entry struct {
	Line int
	Text string
}

// ReadBatchFile reads texts from a file, one per line. Blank lines and lines
// starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	entries, err := ReadEntries(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return entries, nil
}

// ReadEntries reads texts from r using the batch file format
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Line: lineNo, Text: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
