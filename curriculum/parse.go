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

package curriculum

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ianlewis/go-hanzi/internal/vocab"
)

// Column names.
const (
	ColumnSimplified = "Simplified"
	ColumnChapter    = "Chapter"
	ColumnPinyin     = "Pinyin"
	ColumnCategory   = "Category"
	ColumnMeaning    = "Meaning"
)

// Options are options for parsing a curriculum.
type Options struct {
	// Comma is the field delimiter. Defaults to ','.
	Comma rune

	// Logger receives diagnostics about skipped rows. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultOptions is the default options for Parse.
var DefaultOptions = &Options{
	Comma:  ',',
	Logger: zap.NewNop(),
}

func (o *Options) comma() rune {
	if o == nil || o.Comma == 0 {
		return DefaultOptions.Comma
	}
	return o.Comma
}

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return DefaultOptions.Logger
	}
	return o.Logger
}

// columns holds the position of each known column, or -1 if absent.
type columns struct {
	simplified, chapter, pinyin, category, meaning int
}

func newColumns(header []string) columns {
	c := columns{-1, -1, -1, -1, -1}
	for i, name := range header {
		// The first column of files saved by some spreadsheet tools starts
		// with a byte order mark.
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnSimplified:
			c.simplified = i
		case ColumnChapter:
			c.chapter = i
		case ColumnPinyin:
			c.pinyin = i
		case ColumnCategory:
			c.category = i
		case ColumnMeaning:
			c.meaning = i
		}
	}
	return c
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// Parse reads a curriculum from delimited text. The first record is the
// header. Rows without a Simplified value are skipped. All fields are trimmed
// of leading and trailing whitespace. Rows for the same word accumulate in
// input order. Only read and quoting errors are returned.
func Parse(r io.Reader, opts *Options) (*Lexicon, error) {
	log := opts.logger()

	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := newColumns(header)
	if cols.simplified < 0 {
		log.Warn("curriculum has no Simplified column", zap.Strings("header", header))
	}

	var b vocab.Builder[Entry]
	var chapters []string
	seen := map[string]bool{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading curriculum: %w", err)
		}

		word := field(record, cols.simplified)
		if word == "" {
			line, _ := cr.FieldPos(0)
			log.Debug("skipping row without Simplified value", zap.Int("line", line))
			continue
		}

		e := Entry{
			Chapter:  field(record, cols.chapter),
			Pinyin:   field(record, cols.pinyin),
			Category: field(record, cols.category),
			Meaning:  field(record, cols.meaning),
		}
		b.Add(word, e)

		if e.Chapter != "" && !seen[e.Chapter] {
			seen[e.Chapter] = true
			chapters = append(chapters, e.Chapter)
		}
	}

	log.Debug("parsed curriculum", zap.Int("words", b.Len()), zap.Int("chapters", len(chapters)))

	return &Lexicon{
		v:        b.Build(),
		chapters: chapters,
	}, nil
}

// Open parses the curriculum file at path. Files with a .tsv extension are
// read as tab delimited unless opts sets a delimiter.
func Open(path string, opts *Options) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Comma == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		o.Comma = '\t'
	}

	l, err := Parse(f, &o)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return l, nil
}
