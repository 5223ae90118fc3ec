// Package parser reads calculation parameters from JSONL files, one
// parameter set per line, for batch runs.
package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/anomredux/tokencalc/internal/domain"
)

// Record is one parameter set and where it came from.
type Record struct {
	Params domain.Parameters
	Source string // file:line
}

// LineError describes a line that could not be decoded.
type LineError struct {
	Source string
	Err    error
}

func (e LineError) Error() string { return e.Source + ": " + e.Err.Error() }

// ParseResult holds parsed records and error stats.
type ParseResult struct {
	Records    []Record
	SkipCount  int
	ErrorCount int
	Errors     []LineError
}

func (r *ParseResult) merge(other ParseResult) {
	r.Records = append(r.Records, other.Records...)
	r.SkipCount += other.SkipCount
	r.ErrorCount += other.ErrorCount
	r.Errors = append(r.Errors, other.Errors...)
}

// ParseReader reads JSONL from r line by line. Blank lines and lines starting
// with '#' are skipped. name prefixes each record's Source.
func ParseReader(r io.Reader, name string) ParseResult {
	var result ParseResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // 10MB max line

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		source := fmt.Sprintf("%s:%d", name, lineNo)

		var p domain.Parameters
		if err := json.Unmarshal(line, &p); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, LineError{Source: source, Err: err})
			continue
		}

		// {} or a record with nothing to estimate carries no work.
		if p.InputText == "" && p.OutputText == "" && p.Model == "" {
			result.SkipCount++
			continue
		}

		result.Records = append(result.Records, Record{Params: p, Source: source})
	}

	if err := scanner.Err(); err != nil {
		result.ErrorCount++
		result.Errors = append(result.Errors, LineError{Source: name, Err: err})
	}

	return result
}
