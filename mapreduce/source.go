package mapreduce

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// Row is one input record. A nil field is absent.
type Row []*string

// RowSource yields rows until it returns io.EOF.
type RowSource interface {
	Next() (Row, error)
}

type sliceSource struct {
	rows []Row
	next int
}

// NewSliceSource yields rows from memory.
func NewSliceSource(rows []Row) RowSource {
	return &sliceSource{rows: rows}
}

func (s *sliceSource) Next() (Row, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}

// CSVOptions configures a CSVSource.
type CSVOptions struct {
	Delimiter rune // defaults to ','
}

const maxLineSize = 16 * 1024 * 1024

// CSVSource yields one row per input line. Quoted fields never span lines
// and stray quotes are kept as text.
type CSVSource struct {
	scanner *bufio.Scanner
	comma   rune
	line    int
	skipped int
}

// NewCSVSource reads delimited lines from r. Empty fields are absent, blank
// lines are ignored and lines that fail to parse are logged and skipped.
func NewCSVSource(r io.Reader, opts CSVOptions) *CSVSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	comma := opts.Delimiter
	if comma == 0 {
		comma = ','
	}
	return &CSVSource{scanner: scanner, comma: comma}
}

func (s *CSVSource) Next() (Row, error) {
	for s.scanner.Scan() {
		s.line++
		record, err := s.parse(s.scanner.Text())
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("skip malformed line %v: %v", s.line, parseErr.Err)
			s.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read line %v: %w", s.line, err)
		}
		if record == nil {
			continue
		}
		row := make(Row, len(record))
		for i := range record {
			if record[i] != "" {
				row[i] = &record[i]
			}
		}
		return row, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read line %v: %w", s.line+1, err)
	}
	return nil, io.EOF
}

// parse splits a single line into fields. It returns nil for a blank line.
func (s *CSVSource) parse(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = s.comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err != nil && err != io.EOF {
		return nil, err
	}
	// an unterminated quote ends its field at the end of the line.
	if n := len(record); n > 0 {
		record[n-1] = strings.TrimSuffix(record[n-1], "\n")
	}
	return record, nil
}

// Skipped returns the number of malformed lines dropped so far.
func (s *CSVSource) Skipped() int {
	return s.skipped
}

// ReadAll drains src into memory.
func ReadAll(src RowSource) ([]Row, error) {
	var rows []Row
	for {
		row, err := src.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
