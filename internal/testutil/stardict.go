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

package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-hanzi/stardict"
)

// Stardict describes a test StarDict dictionary.
type Stardict struct {
	// Name is the base file name. Defaults to "dictionary".
	Name string

	// Ifo overrides the generated .ifo file contents.
	Ifo string

	// Headwords are the index words. Words holds the data for each headword.
	Headwords []string
	Words     []*stardict.DictWord

	// Synonyms are written to a .syn file if non-empty.
	Synonyms []*stardict.SynWord

	// SameTypeSequence is the sametypesequence option.
	SameTypeSequence []stardict.DataType

	// IdxOffsetBits defaults to 32.
	IdxOffsetBits int

	// IdxExt defaults to ".idx". Use ".idx.gz" for a compressed index.
	IdxExt string

	// DictExt defaults to ".dict". Use ".dict.dz" for a dictzip file.
	DictExt string
}

// WriteStardict writes the dictionary files to dir and returns the path to the
// .ifo file.
func WriteStardict(t *testing.T, dir string, d *Stardict) string {
	t.Helper()

	name := d.Name
	if name == "" {
		name = "dictionary"
	}
	bits := d.IdxOffsetBits
	if bits == 0 {
		bits = 32
	}
	idxExt := d.IdxExt
	if idxExt == "" {
		idxExt = ".idx"
	}
	dictExt := d.DictExt
	if dictExt == "" {
		dictExt = ".dict"
	}
	base := filepath.Join(dir, name)

	dictData, idxWords, err := stardict.MakeDict(d.Headwords, d.Words, d.SameTypeSequence)
	if err != nil {
		t.Fatal(err)
	}
	idxData, err := stardict.MakeIdx(idxWords, bits)
	if err != nil {
		t.Fatal(err)
	}

	ifo := d.Ifo
	if ifo == "" {
		var b strings.Builder
		b.WriteString("StarDict's dict ifo file\n")
		b.WriteString("version=3.0.0\n")
		b.WriteString("bookname=" + name + "\n")
		fmt.Fprintf(&b, "wordcount=%d\n", len(idxWords))
		fmt.Fprintf(&b, "idxfilesize=%d\n", len(idxData))
		fmt.Fprintf(&b, "idxoffsetbits=%d\n", bits)
		if len(d.Synonyms) > 0 {
			fmt.Fprintf(&b, "synwordcount=%d\n", len(d.Synonyms))
		}
		if len(d.SameTypeSequence) > 0 {
			b.WriteString("sametypesequence=")
			for _, t := range d.SameTypeSequence {
				b.WriteByte(byte(t))
			}
			b.WriteString("\n")
		}
		ifo = b.String()
	}

	WriteFile(t, base+".ifo", []byte(ifo))
	WriteFile(t, base+idxExt, idxData)
	WriteFile(t, base+dictExt, dictData)
	if len(d.Synonyms) > 0 {
		WriteFile(t, base+".syn", stardict.MakeSyn(d.Synonyms))
	}

	return base + ".ifo"
}
