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

// Package segment splits Chinese text into words annotated with pinyin and
// meaning.
//
// Text is scanned left to right. At each position the longest word in the
// general lexicon is matched. Words that are in the curriculum, or that can be
// split into two curriculum words, are known and annotated from the
// curriculum. Other lexicon words are annotated from the lexicon and reported
// by CollectUnknown as words to study.
package segment

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-hanzi/curriculum"
	"github.com/ianlewis/go-hanzi/lexicon"
)

// ErrDictionaryNotLoaded indicates that the lexicon is empty.
var ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

// Kind is the kind of a segment.
type Kind int

const (
	// Matched segments are known words annotated from the curriculum, or
	// Latin letters annotated with themselves.
	Matched Kind = iota

	// Unmatched segments are lexicon words that are not in the curriculum.
	Unmatched

	// Unknown segments are structural markers, such as a line break, that
	// carry no annotations.
	Unknown
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Matched:
		return "Matched"
	case Unmatched:
		return "Unmatched"
	case Unknown:
		return "Unknown"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Annotation is the reading of a segment. Chapter and Category are only set
// for annotations from the curriculum.
type Annotation struct {
	Pinyin   string
	Meaning  string
	Chapter  string
	Category string
}

// Segment is a contiguous span of the input text.
type Segment struct {
	Text        string
	Kind        Kind
	Annotations []Annotation
}

// Options are options for the Segmenter.
type Options struct {
	// KeepSkipped emits whitespace and characters that match no word as
	// single character Unknown segments instead of dropping them. The
	// concatenated segment text is then always equal to the input.
	KeepSkipped bool
}

// Segmenter segments text against a lexicon and a curriculum. A Segmenter is
// safe for concurrent use.
type Segmenter struct {
	lex  *lexicon.Lexicon
	cur  *curriculum.Lexicon
	opts Options
}

// New returns a new Segmenter. The curriculum may be nil. New returns
// ErrDictionaryNotLoaded if the lexicon is nil or empty.
func New(lex *lexicon.Lexicon, cur *curriculum.Lexicon, opts *Options) (*Segmenter, error) {
	if lex.Len() == 0 {
		return nil, ErrDictionaryNotLoaded
	}

	s := &Segmenter{
		lex: lex,
		cur: cur,
	}
	if opts != nil {
		s.opts = *opts
	}
	return s, nil
}

// Text segments text with a new Segmenter using default options.
func Text(text string, lex *lexicon.Lexicon, cur *curriculum.Lexicon) ([]*Segment, error) {
	s, err := New(lex, cur, nil)
	if err != nil {
		return nil, err
	}
	return s.Segment(text), nil
}

// Segment splits text into segments in order of appearance.
func (s *Segmenter) Segment(text string) []*Segment {
	runes := []rune(text)

	var segs []*Segment
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\n':
			segs = append(segs, &Segment{
				Text: "\n",
				Kind: Unknown,
			})
			i++
		case isLatin(r):
			segs = append(segs, &Segment{
				Text:        string(r),
				Kind:        Matched,
				Annotations: []Annotation{{Pinyin: string(r)}},
			})
			i++
		case unicode.IsSpace(r):
			segs = s.skip(segs, r)
			i++
		default:
			matched, n := s.match(runes, i)
			if n == 0 {
				segs = s.skip(segs, r)
				i++
				continue
			}
			segs = append(segs, matched...)
			i += n
		}
	}
	return segs
}

// match returns the segments for the word starting at i and its length in
// runes. The length is zero if no word matches.
func (s *Segmenter) match(text []rune, i int) ([]*Segment, int) {
	if word, entries, ok := s.lex.LongestPrefix(text, i); ok {
		n := utf8.RuneCountInString(word)

		if c := s.cur.Lookup(word); c != nil {
			return []*Segment{known(word, c)}, n
		}

		if head, tail, ok := s.split(word); ok {
			return []*Segment{
				known(head, s.cur.Lookup(head)),
				known(tail, s.cur.Lookup(tail)),
			}, n
		}

		return []*Segment{unmatched(word, entries)}, n
	}

	if word, entries, ok := s.cur.LongestPrefix(text, i); ok {
		return []*Segment{known(word, entries)}, utf8.RuneCountInString(word)
	}

	return nil, 0
}

// split returns the first split of word into two curriculum words, scanning
// split points from left to right.
func (s *Segmenter) split(word string) (string, string, bool) {
	if s.cur.Len() == 0 {
		return "", "", false
	}

	w := []rune(word)
	for k := 1; k < len(w); k++ {
		head, tail := string(w[:k]), string(w[k:])
		if s.cur.Contains(head) && s.cur.Contains(tail) {
			return head, tail, true
		}
	}
	return "", "", false
}

func (s *Segmenter) skip(segs []*Segment, r rune) []*Segment {
	if !s.opts.KeepSkipped {
		return segs
	}
	return append(segs, &Segment{
		Text: string(r),
		Kind: Unknown,
	})
}

func known(word string, entries []curriculum.Entry) *Segment {
	seg := &Segment{
		Text:        word,
		Kind:        Matched,
		Annotations: make([]Annotation, len(entries)),
	}
	for i, e := range entries {
		seg.Annotations[i] = Annotation{
			Pinyin:   e.Pinyin,
			Meaning:  e.Meaning,
			Chapter:  e.Chapter,
			Category: e.Category,
		}
	}
	return seg
}

func unmatched(word string, entries []lexicon.Entry) *Segment {
	seg := &Segment{
		Text:        word,
		Kind:        Unmatched,
		Annotations: make([]Annotation, len(entries)),
	}
	for i, e := range entries {
		seg.Annotations[i] = Annotation{
			Pinyin:  e.Pinyin,
			Meaning: e.Meaning,
		}
	}
	return seg
}

func isLatin(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
