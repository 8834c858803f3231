// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cedict implements reading the CC-CEDICT Chinese-English dictionary
// text format.
//
// Each line of a CC-CEDICT file holds one entry:
//
//	傳統 传统 [chuan2 tong3] /tradition/traditional/
//
// The traditional form is followed by the simplified form, the numbered
// pinyin in square brackets and slash delimited definitions. Lines starting
// with '#' are comments.
package cedict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-hanzi/lexicon"
)

var (
	// ErrSkip indicates a comment or blank line.
	ErrSkip = errors.New("skipped line")

	// ErrInvalidLine indicates a malformed entry.
	ErrInvalidLine = errors.New("invalid line")
)

// maxLineSize is the largest line the Scanner accepts.
const maxLineSize = 1 << 20

// Record is a single CC-CEDICT entry.
type Record struct {
	Traditional string
	Simplified  string

	// NumberedPinyin is the pinyin as written in the file (e.g. "ni3 hao3").
	NumberedPinyin string

	// Pinyin is the pinyin with tone marks.
	Pinyin string

	// Meaning is the list of definitions joined with "; ".
	Meaning string
}

// ParseLine parses a single CC-CEDICT line.
func ParseLine(line string) (*Record, error) {
	line = strings.TrimRight(line, "/\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return nil, ErrSkip
	}

	parts := strings.Split(line, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: no definitions: %q", ErrInvalidLine, line)
	}

	var defs []string
	for _, d := range parts[1:] {
		if d = strings.TrimSpace(d); d != "" {
			defs = append(defs, d)
		}
	}

	head, numbered, found := strings.Cut(parts[0], "[")
	chars := strings.Fields(head)
	if len(chars) < 2 {
		return nil, fmt.Errorf("%w: missing characters: %q", ErrInvalidLine, line)
	}
	if found {
		numbered = strings.TrimRight(strings.TrimSpace(numbered), "]")
	}

	return &Record{
		Traditional:    chars[0],
		Simplified:     chars[1],
		NumberedPinyin: numbered,
		Pinyin:         DecodePinyin(numbered),
		Meaning:        strings.Join(defs, "; "),
	}, nil
}

// Scanner reads records from CC-CEDICT data. Comments are skipped and invalid
// lines are counted and skipped.
type Scanner struct {
	s       *bufio.Scanner
	rec     *Record
	invalid int
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{
		s: s,
	}
}

// Scan advances to the next record. It returns false at the end of the input
// or on error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		rec, err := ParseLine(s.s.Text())
		switch {
		case err == nil:
			s.rec = rec
			return true
		case errors.Is(err, ErrInvalidLine):
			s.invalid++
		}
	}
	s.rec = nil
	return false
}

// Record returns the current record.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Invalid returns the number of invalid lines skipped so far.
func (s *Scanner) Invalid() int {
	return s.invalid
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Read reads CC-CEDICT data and returns a lexicon keyed by the simplified
// form. Entries sharing a simplified form keep their file order.
func Read(r io.Reader) (*lexicon.Lexicon, error) {
	var b lexicon.Builder
	s := NewScanner(r)
	for s.Scan() {
		rec := s.Record()
		b.Add(rec.Simplified, lexicon.Entry{
			Pinyin:  rec.Pinyin,
			Meaning: rec.Meaning,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading cedict: %w", err)
	}
	return b.Build(), nil
}
