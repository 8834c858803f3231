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

// Package lexicon implements the general-purpose Chinese dictionary used to
// annotate text with pinyin and meaning.
//
// A lexicon is serialized as a JSON object that maps each simplified word to a
// list of readings:
//
//	{"你好": [{"pinyin": "nǐ hǎo", "meaning": "hello; hi"}]}
//
// The file may be compressed with gzip (.gz) or dictzip (.dz).
package lexicon

import (
	"github.com/ianlewis/go-hanzi/internal/vocab"
)

// Entry is a single reading of a word.
type Entry struct {
	// Pinyin is the pronunciation with tone marks.
	Pinyin string `json:"pinyin"`

	// Meaning is the English definition.
	Meaning string `json:"meaning"`
}

// Lexicon is an immutable mapping from words to their readings. A nil
// *Lexicon is empty.
type Lexicon struct {
	v *vocab.Vocab[Entry]
}

// New returns a new Lexicon from the given words. The map is copied.
func New(words map[string][]Entry) *Lexicon {
	return &Lexicon{
		v: vocab.New(words),
	}
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return l.v.Len()
}

// MaxLen returns the length in characters of the longest word.
func (l *Lexicon) MaxLen() int {
	if l == nil {
		return 0
	}
	return l.v.MaxLen()
}

// Lookup returns the entries for the word or nil if not found.
func (l *Lexicon) Lookup(word string) []Entry {
	if l == nil {
		return nil
	}
	return l.v.Lookup(word)
}

// Contains returns true if the word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	return l.v.Contains(word)
}

// Words returns every word in the lexicon in sorted order.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	return l.v.Words()
}

// WithPrefix returns the words that begin with prefix in sorted order.
func (l *Lexicon) WithPrefix(prefix string) []string {
	if l == nil {
		return nil
	}
	return l.v.WithPrefix(prefix)
}

// LongestPrefix returns the longest word in the lexicon that is a prefix of
// text starting at start, along with its entries.
func (l *Lexicon) LongestPrefix(text []rune, start int) (string, []Entry, bool) {
	if l == nil {
		return "", nil, false
	}
	return l.v.LongestPrefix(text, start)
}

// Builder builds a Lexicon incrementally.
type Builder struct {
	b vocab.Builder[Entry]
}

// Add adds an entry for word. Multiple entries for the same word are kept in
// the order they were added.
func (b *Builder) Add(word string, e Entry) {
	b.b.Add(word, e)
}

// Len returns the number of distinct words added.
func (b *Builder) Len() int {
	return b.b.Len()
}

// Build returns the Lexicon.
func (b *Builder) Build() *Lexicon {
	return &Lexicon{
		v: b.b.Build(),
	}
}
