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

// Package vocab implements an immutable mapping of words to dictionary
// entries that supports exact, prefix and longest-prefix lookups.
package vocab

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-hanzi/internal/index"
)

type word string

func (w word) String() string {
	return string(w)
}

// Vocab is an immutable mapping from words to an ordered list of entries. A
// nil *Vocab behaves as an empty vocabulary.
type Vocab[E any] struct {
	entries map[string][]E

	// maxLen is the length in runes of the longest word.
	maxLen int

	// words is sorted bytewise.
	words *index.Index[word]
}

// New creates a Vocab from the given words. The map is copied. Empty words and
// words without any entries are dropped.
func New[E any](words map[string][]E) *Vocab[E] {
	v := &Vocab[E]{
		entries: make(map[string][]E, len(words)),
	}

	keys := make([]word, 0, len(words))
	for w, e := range words {
		if w == "" || len(e) == 0 {
			continue
		}
		v.entries[w] = slices.Clone(e)
		keys = append(keys, word(w))
		if n := utf8.RuneCountInString(w); n > v.maxLen {
			v.maxLen = n
		}
	}
	v.words = index.NewIndex(keys, strings.Compare)

	return v
}

// Len returns the number of words.
func (v *Vocab[E]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// MaxLen returns the length in runes of the longest word.
func (v *Vocab[E]) MaxLen() int {
	if v == nil {
		return 0
	}
	return v.maxLen
}

// Lookup returns a copy of the entries for w, or nil if w is not present.
func (v *Vocab[E]) Lookup(w string) []E {
	if v == nil {
		return nil
	}
	return slices.Clone(v.entries[w])
}

// Contains returns true if w is present.
func (v *Vocab[E]) Contains(w string) bool {
	if v == nil {
		return false
	}
	_, ok := v.entries[w]
	return ok
}

// Words returns all words in bytewise sorted order.
func (v *Vocab[E]) Words() []string {
	if v == nil {
		return nil
	}
	return toStrings(v.words.All())
}

// WithPrefix returns all words beginning with prefix in sorted order.
func (v *Vocab[E]) WithPrefix(prefix string) []string {
	if v == nil {
		return nil
	}
	return toStrings(v.words.Prefix(prefix))
}

// LongestPrefix finds the longest word that is a prefix of text[start:]. At a
// given position at most one word of each length can match, so the result is
// unique.
func (v *Vocab[E]) LongestPrefix(text []rune, start int) (string, []E, bool) {
	if v == nil || start < 0 || start >= len(text) {
		return "", nil, false
	}

	n := min(v.maxLen, len(text)-start)
	for ; n > 0; n-- {
		w := string(text[start : start+n])
		if e, ok := v.entries[w]; ok {
			return w, slices.Clone(e), true
		}
	}
	return "", nil, false
}

func toStrings(words []word) []string {
	if len(words) == 0 {
		return nil
	}
	s := make([]string, len(words))
	for i, w := range words {
		s[i] = string(w)
	}
	return s
}

// Builder accumulates entries for words. Entries added for the same word keep
// their insertion order.
type Builder[E any] struct {
	entries map[string][]E
}

// Add appends e to the entries of w. Empty words are ignored.
func (b *Builder[E]) Add(w string, e E) {
	if w == "" {
		return
	}
	if b.entries == nil {
		b.entries = map[string][]E{}
	}
	b.entries[w] = append(b.entries[w], e)
}

// Len returns the number of distinct words added so far.
func (b *Builder[E]) Len() int {
	return len(b.entries)
}

// Build returns a Vocab holding the accumulated entries. The Builder may be
// reused afterwards.
func (b *Builder[E]) Build() *Vocab[E] {
	return New(b.entries)
}
