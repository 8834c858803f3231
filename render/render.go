// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render writes segmented text and unknown word reports.
package render

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"golang.org/x/text/width"

	"github.com/ianlewis/go-hanzi/segment"
)

// CSS classes of annotated words in HTML output.
const (
	ClassKnown   = "known"
	ClassUnknown = "unknown"
)

var htmlTmpl = template.Must(template.New("segments").Parse(
	`{{range .}}{{if .Break}}<br>
{{else if .Class}}<ruby class="{{.Class}}" title="{{.Title}}">{{.Text}}<rt>{{.Pinyin}}</rt></ruby>{{else}}{{.Text}}{{end}}{{end}}`,
))

// htmlSegment is a segment prepared for the HTML template.
type htmlSegment struct {
	Text   string
	Class  string
	Pinyin string
	Title  string
	Break  bool
}

// HTML writes segs as HTML. Annotated words are written as ruby elements with
// the pinyin as ruby text and the meanings in the title attribute. Newlines
// are written as line breaks.
func HTML(w io.Writer, segs []*segment.Segment) error {
	data := make([]htmlSegment, 0, len(segs))
	for _, s := range segs {
		h := htmlSegment{Text: s.Text}
		switch {
		case s.Kind == segment.Unknown && s.Text == "\n":
			h.Break = true
		case s.Kind == segment.Unknown || isPassThrough(s):
		case s.Kind == segment.Matched:
			h.Class = ClassKnown
		case s.Kind == segment.Unmatched:
			h.Class = ClassUnknown
		}
		if h.Class != "" {
			h.Pinyin = pinyin(s)
			h.Title = strings.Join(meanings(s), " | ")
		}
		data = append(data, h)
	}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

// Text writes segs as plain text. Annotated words are followed by their
// pinyin in parentheses.
func Text(w io.Writer, segs []*segment.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		if _, err := bw.WriteString(s.Text); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
		if s.Kind == segment.Unknown || isPassThrough(s) {
			continue
		}
		if p := pinyin(s); p != "" {
			if _, err := fmt.Fprintf(bw, "(%s)", p); err != nil {
				return fmt.Errorf("writing text: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

// UnknownTable writes words as a table aligned for display in a terminal.
func UnknownTable(w io.Writer, words []*segment.UnknownWord) {
	tbl := table.New("#", "Word", "Pinyin", "Meaning").
		WithWriter(w).
		WithWidthFunc(displayWidth)
	for _, word := range words {
		tbl.AddRow(word.Rank, word.Word, word.Pinyin, word.Meaning)
	}
	tbl.Print()
}

// Entry is a row of a lookup table.
type Entry struct {
	// Source names the dictionary the entry is from.
	Source  string
	Word    string
	Pinyin  string
	Meaning string
	Chapter string
}

// EntryTable writes dictionary entries as a table aligned for display in a
// terminal.
func EntryTable(w io.Writer, entries []Entry) {
	tbl := table.New("Source", "Word", "Pinyin", "Meaning", "Chapter").
		WithWriter(w).
		WithWidthFunc(displayWidth)
	for _, e := range entries {
		tbl.AddRow(e.Source, e.Word, e.Pinyin, e.Meaning, e.Chapter)
	}
	tbl.Print()
}

// UnknownCSV writes words as CSV with a header row.
func UnknownCSV(w io.Writer, words []*segment.UnknownWord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Rank", "Word", "Pinyin", "Meaning"}); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	for _, word := range words {
		if err := cw.Write([]string{
			strconv.Itoa(word.Rank),
			word.Word,
			word.Pinyin,
			word.Meaning,
		}); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// isPassThrough returns true for Latin letters, which are annotated with
// themselves.
func isPassThrough(s *segment.Segment) bool {
	return len(s.Annotations) == 1 &&
		s.Annotations[0].Pinyin == s.Text &&
		s.Annotations[0].Meaning == ""
}

// pinyin returns the distinct readings of s separated by commas.
func pinyin(s *segment.Segment) string {
	var readings []string
	for _, a := range s.Annotations {
		if a.Pinyin != "" && !slices.Contains(readings, a.Pinyin) {
			readings = append(readings, a.Pinyin)
		}
	}
	return strings.Join(readings, ", ")
}

func meanings(s *segment.Segment) []string {
	var m []string
	for _, a := range s.Annotations {
		if a.Meaning != "" {
			m = append(m, a.Meaning)
		}
	}
	return m
}

// displayWidth returns the number of terminal columns used by s. Wide and
// fullwidth characters use two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
