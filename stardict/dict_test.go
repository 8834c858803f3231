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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDictReader tests dictReader.Word.
func TestDictReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		words            []*DictWord
		sametypesequence []DataType
	}{
		{
			name: "typed",
			words: []*DictWord{
				{Data: []*Data{
					{Type: PhoneticType, Data: []byte("nǐ hǎo")},
					{Type: UTFTextType, Data: []byte("hello")},
				}},
				{Data: []*Data{
					{Type: HTMLType, Data: []byte("<b>student</b>")},
					{Type: WavType, Data: []byte{0, 1, 2, 0, 3}},
				}},
			},
		},
		{
			name: "sametypesequence",
			words: []*DictWord{
				{Data: []*Data{
					{Type: PhoneticType, Data: []byte("nǐ hǎo")},
					{Type: UTFTextType, Data: []byte("hello")},
				}},
				{Data: []*Data{
					{Type: PhoneticType, Data: []byte("xuésheng")},
					{Type: UTFTextType, Data: []byte("student")},
				}},
			},
			sametypesequence: []DataType{PhoneticType, UTFTextType},
		},
		{
			name: "sametypesequence file data last",
			words: []*DictWord{
				{Data: []*Data{
					{Type: UTFTextType, Data: []byte("hello")},
					{Type: PictureType, Data: []byte{0x89, 'P', 'N', 'G'}},
				}},
			},
			sametypesequence: []DataType{UTFTextType, PictureType},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			headwords := make([]string, len(test.words))
			b, idx, err := MakeDict(headwords, test.words, test.sametypesequence)
			if err != nil {
				t.Fatalf("MakeDict: %v", err)
			}

			d, err := newDictReader(bytes.NewReader(b), test.sametypesequence)
			if err != nil {
				t.Fatalf("newDictReader: %v", err)
			}

			for i, e := range idx {
				w, err := d.Word(e)
				if err != nil {
					t.Fatalf("Word: %v", err)
				}
				if diff := cmp.Diff(test.words[i], w); diff != "" {
					t.Errorf("Word (-want, +got):\n%s", diff)
				}
			}
		})
	}
}

// TestDictReader_invalid tests invalid word data.
func TestDictReader_invalid(t *testing.T) {
	t.Parallel()

	// File data claims 16 bytes but only has 2.
	b := []byte{byte(WavType), 0, 0, 0, 16, 1, 2}
	d, err := newDictReader(bytes.NewReader(b), nil)
	if err != nil {
		t.Fatalf("newDictReader: %v", err)
	}

	//nolint:gosec // test data is small.
	if _, err := d.Word(&IdxWord{Word: "hoge", Size: uint32(len(b))}); !errors.Is(err, errInvalidData) {
		t.Fatalf("Word; want: %v, got: %v", errInvalidData, err)
	}
}

// TestNewDictReader_invalidType tests that an invalid sametypesequence is an
// error.
func TestNewDictReader_invalidType(t *testing.T) {
	t.Parallel()

	if _, err := newDictReader(bytes.NewReader(nil), []DataType{'Z'}); !errors.Is(err, errInvalidType) {
		t.Fatalf("newDictReader; want: %v, got: %v", errInvalidType, err)
	}
}
