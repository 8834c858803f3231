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

package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var errTruncatedSyn = errors.New("truncated synonym entry")

// SynWord is a .syn file entry.
type SynWord struct {
	// Word is the synonym word.
	Word string

	// OriginalWordIndex is the index into the .idx index.
	OriginalWordIndex uint32
}

// readSyn reads all synonym entries.
func readSyn(r io.Reader) ([]*SynWord, error) {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(splitSyn)

	var words []*SynWord
	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		words = append(words, &SynWord{
			Word:              string(b[:i]),
			OriginalWordIndex: binary.BigEndian.Uint32(b[i+1:]),
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning synonyms: %w", err)
	}
	return words, nil
}

func splitSyn(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte. The 32 bit original_word_index follows.
		tokenSize := i + 5
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return 0, nil, errTruncatedSyn
	}

	// Request more data.
	return 0, nil, nil
}
