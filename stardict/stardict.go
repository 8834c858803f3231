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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-hanzi/lexicon"
)

const ifoMagic = "StarDict's dict ifo file"

var (
	errBadExtension = errors.New("bad extension")
	errBadMagic     = errors.New("bad magic data")
	errBadVersion   = errors.New("invalid version")
	errNoBookname   = errors.New("missing bookname")
	errNotFound     = errors.New("file not found")
	errBadSynonym   = errors.New("synonym refers to missing word")
)

var (
	idxExts  = []string{".idx", ".idx.gz", ".IDX", ".IDX.gz", ".IDX.GZ"}
	dictExts = []string{".dict", ".dict.dz", ".DICT", ".DICT.dz", ".DICT.DZ"}
	synExts  = []string{".syn", ".syn.gz", ".SYN", ".SYN.gz", ".SYN.GZ"}
)

// Stardict is a StarDict dictionary.
type Stardict struct {
	ifoPath string

	version          string
	bookname         string
	wordcount        int64
	synwordcount     int64
	idxoffsetbits    int
	author           string
	email            string
	website          string
	description      string
	sametypesequence []DataType
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string) ([]*Stardict, []error) {
	var dicts []*Stardict
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".ifo") {
			dict, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, dict)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens a StarDict dictionary from the given .ifo file path. The index
// and definitions are not read until Lexicon is called.
func Open(path string) (*Stardict, error) {
	s := &Stardict{
		ifoPath:       path,
		idxoffsetbits: 32,
	}

	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".ifo") {
		return nil, fmt.Errorf("%w: %v", errBadExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	info, err := readIfo(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if info.magic != ifoMagic {
		return nil, fmt.Errorf("%q: %w", path, errBadMagic)
	}

	s.version = info.Value("version")
	switch s.version {
	case "2.4.2":
	case "3.0.0":
	default:
		return nil, fmt.Errorf("%w: %v", errBadVersion, s.version)
	}

	s.bookname = info.Value("bookname")
	if s.bookname == "" {
		return nil, errNoBookname
	}

	s.wordcount, err = strconv.ParseInt(info.Value("wordcount"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad wordcount: %w", err)
	}

	if v := info.Value("idxoffsetbits"); v != "" && s.version == "3.0.0" {
		s.idxoffsetbits, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidIdxOffset, err)
		}
		if s.idxoffsetbits != 32 && s.idxoffsetbits != 64 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidIdxOffset, s.idxoffsetbits)
		}
	}

	if v := info.Value("synwordcount"); v != "" {
		s.synwordcount, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad synwordcount: %w", err)
		}
	}

	for _, r := range info.Value("sametypesequence") {
		t := DataType(r)
		if !t.valid() {
			return nil, fmt.Errorf("sametypesequence: %w: %v", errInvalidType, t)
		}
		s.sametypesequence = append(s.sametypesequence, t)
	}

	s.author = info.Value("author")
	s.email = info.Value("email")
	s.description = info.Value("description")
	s.website = info.Value("website")

	return s, nil
}

// Bookname returns the dictionary name.
func (s *Stardict) Bookname() string {
	return s.bookname
}

// Description returns the dictionary description.
func (s *Stardict) Description() string {
	return s.description
}

// Author returns the dictionary author.
func (s *Stardict) Author() string {
	return s.author
}

// Email returns the dictionary contact email.
func (s *Stardict) Email() string {
	return s.email
}

// Website returns the dictionary website url.
func (s *Stardict) Website() string {
	return s.website
}

// WordCount returns the dictionary word count.
func (s *Stardict) WordCount() int64 {
	return s.wordcount
}

// SynWordCount returns the dictionary synonym count.
func (s *Stardict) SynWordCount() int64 {
	return s.synwordcount
}

// Version returns the dictionary format version.
func (s *Stardict) Version() string {
	return s.version
}

// Lexicon reads the index, definitions and synonyms and returns them as a
// lexicon. Synonyms share the entries of the word they refer to.
func (s *Stardict) Lexicon() (*lexicon.Lexicon, error) {
	words, err := s.readIdx()
	if err != nil {
		return nil, err
	}

	entries, err := s.readDict(words)
	if err != nil {
		return nil, err
	}

	var b lexicon.Builder
	for i, w := range words {
		b.Add(w.Word, entries[i])
	}

	syns, err := s.readSyn()
	if err != nil {
		return nil, err
	}
	for _, syn := range syns {
		if int64(syn.OriginalWordIndex) >= int64(len(words)) {
			return nil, fmt.Errorf("%w: %q -> %d", errBadSynonym, syn.Word, syn.OriginalWordIndex)
		}
		b.Add(syn.Word, entries[syn.OriginalWordIndex])
	}

	return b.Build(), nil
}

func (s *Stardict) readIdx() ([]*IdxWord, error) {
	path, err := findFile(s.ifoPath, idxExts)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	words, err := readIdx(r, s.idxoffsetbits)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return words, nil
}

func (s *Stardict) readDict(words []*IdxWord) ([]lexicon.Entry, error) {
	path, err := findFile(s.ifoPath, dictExts)
	if err != nil {
		return nil, fmt.Errorf("dict: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.ReaderAt = f
	if strings.EqualFold(filepath.Ext(path), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = z
	}

	d, err := newDictReader(r, s.sametypesequence)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	entries := make([]lexicon.Entry, len(words))
	for i, w := range words {
		dw, err := d.Word(w)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		entries[i], err = toEntry(dw)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", w.Word, err)
		}
	}
	return entries, nil
}

func (s *Stardict) readSyn() ([]*SynWord, error) {
	path, err := findFile(s.ifoPath, synExts)
	if errors.Is(err, errNotFound) {
		// The .syn file is optional.
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	syns, err := readSyn(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return syns, nil
}

// findFile returns the first existing file named after the .ifo file with
// one of the given extensions.
func findFile(ifoPath string, exts []string) (string, error) {
	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))
	for _, ext := range exts {
		path := baseName + ext
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s{%s}", errNotFound, baseName, strings.Join(exts, ","))
}
