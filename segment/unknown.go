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

package segment

// UnknownWord is a lexicon word that is not in the curriculum.
type UnknownWord struct {
	// Rank is the 1-based order of the word's first occurrence.
	Rank int

	Word    string
	Pinyin  string
	Meaning string
}

// CollectUnknown returns the distinct Unmatched words in segs in order of
// first occurrence. The pinyin and meaning are taken from the first
// annotation of the first occurrence.
func CollectUnknown(segs []*Segment) []*UnknownWord {
	var words []*UnknownWord
	seen := map[string]bool{}
	for _, seg := range segs {
		if seg == nil || seg.Kind != Unmatched || seen[seg.Text] {
			continue
		}
		seen[seg.Text] = true

		w := &UnknownWord{
			Rank: len(words) + 1,
			Word: seg.Text,
		}
		if len(seg.Annotations) > 0 {
			w.Pinyin = seg.Annotations[0].Pinyin
			w.Meaning = seg.Annotations[0].Meaning
		}
		words = append(words, w)
	}
	return words
}
