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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	errInvalidType        = errors.New("invalid type")
	errInvalidData        = errors.New("invalid word data")
	errWordOffsetTooLarge = errors.New("word offset too large")
)

// DataType is a type of data in a word. Lower case characters represent
// string-like data that is terminated by a null terminator ('\0'). Upper case
// characters represent file-like data that starts with a 32-bit size followed
// by file data.
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')

	// LocaleTextType is text in a locale encoding.
	LocaleTextType = DataType('l')

	// PangoTextType is utf-8 text in the Pango text format.
	PangoTextType = DataType('g')

	// PhoneticType is utf-8 text representing a phonetic string. Chinese
	// dictionaries store pinyin here.
	PhoneticType = DataType('t')

	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')

	// YinBiaoOrKataType is utf-8 encoded Yin Biao or Kana phonetic string.
	YinBiaoOrKataType = DataType('y')

	// PowerWordType is a utf-8 encoded KingSoft PowerWord XML format.
	PowerWordType = DataType('p')

	// MediaWikiType is utf-8 encoded text in MediaWiki format.
	MediaWikiType = DataType('w')

	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')

	// WordNetType is WordNet data.
	WordNetType = DataType('n')

	// ResourceFileListType is a list of files in resource storage.
	ResourceFileListType = DataType('r')

	// WavType is .wav sound file data.
	WavType = DataType('W')

	// PictureType is image file data.
	PictureType = DataType('P')

	// ExperimentalType is reserved for experimental features.
	ExperimentalType = DataType('X')
)

func (t DataType) isString() bool {
	return 'a' <= t && t <= 'z'
}

func (t DataType) valid() bool {
	switch t {
	case UTFTextType,
		LocaleTextType,
		PangoTextType,
		PhoneticType,
		XDXFType,
		YinBiaoOrKataType,
		PowerWordType,
		MediaWikiType,
		HTMLType,
		WordNetType,
		ResourceFileListType,
		WavType,
		PictureType,
		ExperimentalType:
		return true
	default:
		return false
	}
}

// Data is a data entry in a DictWord.
type Data struct {
	Type DataType
	Data []byte
}

// DictWord is a full .dict entry for a headword.
type DictWord struct {
	Data []*Data
}

// dictReader reads word data from .dict data.
type dictReader struct {
	r                io.ReaderAt
	sametypesequence []DataType
}

func newDictReader(r io.ReaderAt, sametypesequence []DataType) (*dictReader, error) {
	for _, t := range sametypesequence {
		if !t.valid() {
			return nil, fmt.Errorf("%w: %v", errInvalidType, t)
		}
	}
	return &dictReader{
		r:                r,
		sametypesequence: sametypesequence,
	}, nil
}

// Word reads the data for the given index entry.
func (d *dictReader) Word(e *IdxWord) (*DictWord, error) {
	if e.Offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errWordOffsetTooLarge, e.Offset)
	}
	b := make([]byte, e.Size)
	//nolint:gosec // offset size is bounds checked above.
	n, err := d.r.ReadAt(b, int64(e.Offset))
	// ReadAt may return io.EOF along with the final bytes of the file.
	if err != nil && (!errors.Is(err, io.EOF) || n != len(b)) {
		return nil, fmt.Errorf("reading %q: %w", e.Word, err)
	}

	var w DictWord
	if len(d.sametypesequence) > 0 {
		for i, t := range d.sametypesequence {
			last := i == len(d.sametypesequence)-1
			var data []byte
			data, b, err = next(t, b, last)
			if err != nil {
				return nil, fmt.Errorf("reading %q: %w", e.Word, err)
			}
			w.Data = append(w.Data, &Data{Type: t, Data: data})
		}
		return &w, nil
	}

	for len(b) > 0 {
		t := DataType(b[0])
		var data []byte
		data, b, err = next(t, b[1:], false)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", e.Word, err)
		}
		w.Data = append(w.Data, &Data{Type: t, Data: data})
	}
	return &w, nil
}

// next splits the data of type t from the front of b. When last is true the
// value extends to the end of b, as the final entry of a sametypesequence word
// has no terminator or size.
func next(t DataType, b []byte, last bool) ([]byte, []byte, error) {
	if last {
		if t.isString() {
			return bytes.TrimRight(b, "\x00"), nil, nil
		}
		return b, nil, nil
	}

	if t.isString() {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			return b, nil, nil
		}
		return b[:i], b[i+1:], nil
	}

	if len(b) < 4 {
		return nil, nil, errInvalidData
	}
	size := binary.BigEndian.Uint32(b)
	if uint64(size) > uint64(len(b)-4) {
		return nil, nil, errInvalidData
	}
	return b[4 : 4+size], b[4+size:], nil
}
