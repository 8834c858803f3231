// Copyright 2025 Ian Lewis
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

// Package folding implements text folding transformers.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// DefinitionFolder folds whitespace in dictionary definitions. Leading and
// trailing whitespace is removed. Each internal whitespace span is replaced by
// a single ASCII space, or by "; " when the span contains a line break, so
// that multi-line definitions become a single list.
type DefinitionFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// wsSpan is true if the transformer is currently handling a whitespace span.
	wsSpan bool

	// lineBreak is true if the current whitespace span contains a line break.
	lineBreak bool

	// last is the last rune emitted.
	last rune
}

// Transform implements [transform.Transformer.Transform].
func (f *DefinitionFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			nSrc += size
			if f.notStart {
				f.wsSpan = true
				if c == '\n' || c == '\r' {
					f.lineBreak = true
				}
			}
			continue
		}

		// NOTE: trailing whitespace is never emitted as the separator is only
		// written in front of the next non-whitespace rune.
		sep := ""
		if f.wsSpan {
			sep = " "
			if f.lineBreak && f.last != ';' {
				sep = "; "
			}
		}

		// NOTE: utf8.RuneLen is used rather than size because c could be
		// utf8.RuneError which is encoded with 3 bytes.
		if nDst+len(sep)+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], sep)
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size

		f.notStart = true
		f.wsSpan = false
		f.lineBreak = false
		f.last = c
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *DefinitionFolder) Reset() {
	*f = DefinitionFolder{}
}
