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
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidIdxOffset indicates that the idxoffsetbits value is invalid.
var ErrInvalidIdxOffset = errors.New("invalid idxoffsetbits")

var errTruncatedIdx = errors.New("truncated index entry")

// IdxWord is an .idx file entry.
type IdxWord struct {
	Word   string
	Offset uint64
	Size   uint32
}

// idxScanner scans an index from start to end.
type idxScanner struct {
	s             *bufio.Scanner
	idxoffsetbits int
}

func newIdxScanner(r io.Reader, idxoffsetbits int) (*idxScanner, error) {
	if idxoffsetbits != 32 && idxoffsetbits != 64 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdxOffset, idxoffsetbits)
	}
	s := &idxScanner{
		s:             bufio.NewScanner(bufio.NewReader(r)),
		idxoffsetbits: idxoffsetbits,
	}
	s.s.Split(s.split)
	return s, nil
}

// Scan advances to the next index entry.
func (s *idxScanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *idxScanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Word returns the current entry.
func (s *idxScanner) Word() *IdxWord {
	var e IdxWord
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		e.Word = string(b[0:i])
		if s.idxoffsetbits == 64 {
			e.Offset = binary.BigEndian.Uint64(b[i+1:])
		} else {
			e.Offset = uint64(binary.BigEndian.Uint32(b[i+1:]))
		}
		e.Size = binary.BigEndian.Uint32(b[i+1+s.idxoffsetbits/8:])
	}

	return &e
}

// split splits an index entry in the index file.
func (s *idxScanner) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte. The offset and 32 bit size follow.
		tokenSize := i + 1 + s.idxoffsetbits/8 + 4
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return 0, nil, errTruncatedIdx
	}

	// Request more data.
	return 0, nil, nil
}

// readIdx reads all index entries in file order.
func readIdx(r io.Reader, idxoffsetbits int) ([]*IdxWord, error) {
	s, err := newIdxScanner(r, idxoffsetbits)
	if err != nil {
		return nil, err
	}

	var words []*IdxWord
	for s.Scan() {
		words = append(words, s.Word())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}
	return words, nil
}
