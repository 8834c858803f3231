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

// Package curriculum implements the user curated dictionary of words that are
// already known, e.g. the vocabulary of a textbook.
//
// A curriculum is read from delimited text with a header row. The columns
// "Simplified", "Chapter", "Pinyin", "Category" and "Meaning" are recognized
// by their exact names; other columns are ignored.
//
//	Simplified,Chapter,Pinyin,Category,Meaning
//	你好,1,nǐ hǎo,greeting,hello
package curriculum

import (
	"github.com/ianlewis/go-hanzi/internal/vocab"
)

// Entry is a single curriculum entry for a word.
type Entry struct {
	Chapter  string
	Pinyin   string
	Category string
	Meaning  string
}

// Lexicon is an immutable mapping from words to curriculum entries. A nil
// *Lexicon is empty.
type Lexicon struct {
	v *vocab.Vocab[Entry]

	// chapters in order of first appearance.
	chapters []string
}

// New returns a new Lexicon from the given words. The map is copied.
func New(words map[string][]Entry) *Lexicon {
	l := &Lexicon{
		v: vocab.New(words),
	}
	seen := map[string]bool{}
	for _, w := range l.v.Words() {
		for _, e := range l.v.Lookup(w) {
			if e.Chapter != "" && !seen[e.Chapter] {
				seen[e.Chapter] = true
				l.chapters = append(l.chapters, e.Chapter)
			}
		}
	}
	return l
}

// Len returns the number of words.
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

// Lookup returns the entries for word or nil if it is not known.
func (l *Lexicon) Lookup(word string) []Entry {
	if l == nil {
		return nil
	}
	return l.v.Lookup(word)
}

// Contains returns true if word is in the curriculum.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	return l.v.Contains(word)
}

// Words returns every word in sorted order.
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

// LongestPrefix returns the longest word that is a prefix of text starting at
// start, along with its entries.
func (l *Lexicon) LongestPrefix(text []rune, start int) (string, []Entry, bool) {
	if l == nil {
		return "", nil, false
	}
	return l.v.LongestPrefix(text, start)
}

// Chapters returns the distinct non-empty chapter names. Chapters read with
// Parse are in order of first appearance; otherwise they are ordered by the
// first word, in sorted order, that uses them.
func (l *Lexicon) Chapters() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.chapters...)
}
