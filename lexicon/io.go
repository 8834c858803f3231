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

package lexicon

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// ErrInvalidFormat indicates that the lexicon data is malformed.
var ErrInvalidFormat = errors.New("invalid lexicon format")

// Read reads a JSON serialized lexicon from r.
func Read(r io.Reader) (*Lexicon, error) {
	var words map[string][]Entry
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return New(words), nil
}

// Write writes the lexicon to w as JSON. Words are written in sorted order.
func Write(w io.Writer, l *Lexicon) error {
	words := make(map[string][]Entry, l.Len())
	for _, word := range l.Words() {
		words[word] = l.Lookup(word)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("encoding lexicon: %w", err)
	}
	return nil
}

// Open reads the lexicon file at path. Files ending in .gz are decompressed
// with gzip and files ending in .dz are decompressed with dictzip.
func Open(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	}

	l, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return l, nil
}

// Save writes the lexicon to path. If path ends in .gz the file is compressed
// with gzip.
func Save(path string, l *Lexicon) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cerr)
		}
	}()

	if strings.ToLower(filepath.Ext(path)) != ".gz" {
		return Write(f, l)
	}

	z := gzip.NewWriter(f)
	if err := Write(z, l); err != nil {
		return err
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("compressing %q: %w", path, err)
	}
	return nil
}
