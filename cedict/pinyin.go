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

package cedict

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// toneMarks are the combining diacritics for tones 1 through 4.
var toneMarks = [...]rune{
	1: '\u0304', // macron
	2: '\u0301', // acute
	3: '\u030C', // caron
	4: '\u0300', // grave
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'o', 'e', 'i', 'u', 'v', 'ü':
		return true
	}
	return false
}

// DecodePinyin converts numbered pinyin (e.g. "ni3 hao3") into pinyin with
// tone marks ("nǐhǎo"). Syllables are joined together and characters other
// than letters and tone numbers are dropped. "u:" is written as "ü". Tone 5
// (and 0) is the neutral tone and carries no mark. A tone number following a
// syllable without vowels (e.g. "m2") is kept as is.
func DecodePinyin(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, " : ", " "))

	var out strings.Builder
	var syl []rune
	for _, c := range s {
		switch {
		case 'a' <= c && c <= 'z':
			syl = append(syl, c)
		case c == ':':
			if n := len(syl); n > 0 && syl[n-1] == 'u' {
				syl[n-1] = 'ü'
			}
		default:
			if '0' <= c && c <= '5' {
				if tone := int(c-'0') % 5; tone != 0 {
					syl = markTone(syl, tone, c)
				}
			}
			out.WriteString(norm.NFC.String(string(syl)))
			syl = syl[:0]
		}
	}
	out.WriteString(norm.NFC.String(string(syl)))

	return out.String()
}

// markTone places the tone mark on the syllable's main vowel.
func markTone(syl []rune, tone int, digit rune) []rune {
	start := -1
	end := -1
	for i, r := range syl {
		if isVowel(r) {
			if start < 0 {
				start = i
			}
			end = i + 1
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		return append(syl, digit)
	}

	at := -1
	if end-start == 1 {
		at = start
	} else {
		str := string(syl)
		switch {
		case strings.ContainsRune(str, 'a'):
			at = runeIndex(syl, 'a')
		case strings.ContainsRune(str, 'o'):
			at = runeIndex(syl, 'o')
		case strings.ContainsRune(str, 'e'):
			at = runeIndex(syl, 'e')
		case strings.HasSuffix(str, "ui"), strings.HasSuffix(str, "iu"):
			at = len(syl) - 1
		default:
			return append(syl, '!')
		}
	}

	if syl[at] == 'v' {
		syl[at] = 'ü'
	}

	marked := make([]rune, 0, len(syl)+1)
	marked = append(marked, syl[:at+1]...)
	marked = append(marked, toneMarks[tone])
	return append(marked, syl[at+1:]...)
}

func runeIndex(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}
