package ingestion

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aevon-lab/contact-ledger/internal/normalize"
)

// Line is one decoded record and its 1-based position in the input.
type Line struct {
	Number int
	Record normalize.Record
}

// LineError reports input that is not a JSON object on a given line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: malformed JSON: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ReadRecords decodes newline-delimited JSON. Blank lines are skipped; the first
// malformed line fails the whole input with a *LineError.
func ReadRecords(r io.Reader) ([]Line, error) {
	br := bufio.NewReader(r)

	var lines []Line
	number := 0
	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if len(raw) > 0 {
			number++
			if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
				rec, decodeErr := normalize.DecodeRecord(trimmed)
				if decodeErr != nil {
					return nil, &LineError{Line: number, Err: decodeErr}
				}
				lines = append(lines, Line{Number: number, Record: rec})
			}
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
	}
}
