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
	"encoding/binary"
	"fmt"
	"math"
)

// MakeDict serializes words in the .dict format. It returns the data along
// with the index entries pointing at each word.
func MakeDict(headwords []string, words []*DictWord, sametypesequence []DataType) ([]byte, []*IdxWord, error) {
	if len(headwords) != len(words) {
		return nil, nil, fmt.Errorf("%d headwords for %d words", len(headwords), len(words))
	}

	var b []byte
	var idx []*IdxWord
	for i, w := range words {
		start := len(b)
		for j, d := range w.Data {
			// The last item of a sametypesequence word has no terminator or
			// size.
			last := len(sametypesequence) > 0 && j == len(w.Data)-1
			if len(sametypesequence) == 0 {
				b = append(b, byte(d.Type))
			}
			if last {
				b = append(b, d.Data...)
				continue
			}
			if d.Type.isString() {
				b = append(b, d.Data...)
				b = append(b, 0)
				continue
			}
			if len(d.Data) > math.MaxUint32 {
				return nil, nil, fmt.Errorf("word data too long: %d", len(d.Data))
			}
			//nolint:gosec // bounds checked above.
			b = binary.BigEndian.AppendUint32(b, uint32(len(d.Data)))
			b = append(b, d.Data...)
		}
		//nolint:gosec // test dictionaries are small.
		idx = append(idx, &IdxWord{
			Word:   headwords[i],
			Offset: uint64(start),
			Size:   uint32(len(b) - start),
		})
	}
	return b, idx, nil
}

// MakeIdx serializes index entries in the .idx format.
func MakeIdx(words []*IdxWord, idxoffsetbits int) ([]byte, error) {
	var b []byte
	for _, w := range words {
		b = append(b, w.Word...)
		b = append(b, 0)
		switch idxoffsetbits {
		case 32:
			if w.Offset > math.MaxUint32 {
				return nil, fmt.Errorf("word offset too large: %d", w.Offset)
			}
			//nolint:gosec // offset size is bounds checked above.
			b = binary.BigEndian.AppendUint32(b, uint32(w.Offset))
		case 64:
			b = binary.BigEndian.AppendUint64(b, w.Offset)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidIdxOffset, idxoffsetbits)
		}
		b = binary.BigEndian.AppendUint32(b, w.Size)
	}
	return b, nil
}

// MakeSyn serializes synonym entries in the .syn format.
func MakeSyn(words []*SynWord) []byte {
	var b []byte
	for _, w := range words {
		b = append(b, w.Word...)
		b = append(b, 0)
		b = binary.BigEndian.AppendUint32(b, w.OriginalWordIndex)
	}
	return b
}
