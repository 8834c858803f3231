// Copyright 2021 Google LLC
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

package stardict

import (
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-hanzi/cedict"
	"github.com/ianlewis/go-hanzi/internal/folding"
	"github.com/ianlewis/go-hanzi/lexicon"
)

// toEntry converts a word's data into a lexicon entry. Phonetic data becomes
// the pinyin and text data the meaning. Other data types are ignored.
func toEntry(w *DictWord) (lexicon.Entry, error) {
	var pinyin, meaning []string
	for _, d := range w.Data {
		var text string
		switch d.Type {
		case PhoneticType, YinBiaoOrKataType:
			p, err := fold(string(d.Data))
			if err != nil {
				return lexicon.Entry{}, err
			}
			if p != "" {
				pinyin = append(pinyin, p)
			}
			continue
		case UTFTextType, LocaleTextType:
			text = string(d.Data)
		case HTMLType, PangoTextType, XDXFType:
			text = html2text.HTML2Text(string(d.Data))
		default:
			continue
		}

		m, err := fold(text)
		if err != nil {
			return lexicon.Entry{}, err
		}
		if m != "" {
			meaning = append(meaning, m)
		}
	}

	e := lexicon.Entry{
		Pinyin:  strings.Join(pinyin, " "),
		Meaning: strings.Join(meaning, "; "),
	}

	// CC-CEDICT conversions put the numbered pinyin in front of the
	// definition, e.g. "[ni3 hao3] hello".
	if e.Pinyin == "" && strings.HasPrefix(e.Meaning, "[") {
		if numbered, rest, ok := strings.Cut(e.Meaning[1:], "]"); ok {
			e.Pinyin = cedict.DecodePinyin(numbered)
			e.Meaning = strings.TrimSpace(rest)
		}
	}

	return e, nil
}

// fold trims the text and collapses internal whitespace and line breaks.
func fold(s string) (string, error) {
	folded, _, err := transform.String(&folding.DefinitionFolder{}, s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
