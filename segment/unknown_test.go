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

package segment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-hanzi/segment"
)

// TestCollectUnknown tests CollectUnknown.
func TestCollectUnknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segs     []*segment.Segment
		expected []*segment.UnknownWord
	}{
		{
			name: "empty",
		},
		{
			name: "dedup and rank",
			segs: []*segment.Segment{
				unmatched("学生", "xuésheng", "student"),
				matched("我", "1", "wǒ", "I"),
				unknown("\n"),
				unmatched("是", "shì", "to be"),
				unmatched("学生", "xuésheng", "pupil"),
				latin("a"),
				unmatched("老师", "lǎoshī", "teacher"),
			},
			expected: []*segment.UnknownWord{
				{Rank: 1, Word: "学生", Pinyin: "xuésheng", Meaning: "student"},
				{Rank: 2, Word: "是", Pinyin: "shì", Meaning: "to be"},
				{Rank: 3, Word: "老师", Pinyin: "lǎoshī", Meaning: "teacher"},
			},
		},
		{
			name: "first annotation",
			segs: []*segment.Segment{
				{
					Text: "行",
					Kind: segment.Unmatched,
					Annotations: []segment.Annotation{
						{Pinyin: "xíng", Meaning: "to walk"},
						{Pinyin: "háng", Meaning: "row"},
					},
				},
			},
			expected: []*segment.UnknownWord{
				{Rank: 1, Word: "行", Pinyin: "xíng", Meaning: "to walk"},
			},
		},
		{
			name: "no annotations",
			segs: []*segment.Segment{
				{Text: "行", Kind: segment.Unmatched},
				nil,
			},
			expected: []*segment.UnknownWord{
				{Rank: 1, Word: "行"},
			},
		},
		{
			name: "only known",
			segs: []*segment.Segment{
				matched("我", "1", "wǒ", "I"),
				unknown("\n"),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := segment.CollectUnknown(test.segs)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("CollectUnknown (-want, +got):\n%s", diff)
			}
		})
	}
}
