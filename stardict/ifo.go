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
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	errMissingVersion = errors.New("missing version")
	errInvalidKey     = errors.New("invalid key")
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// ifo is the parsed contents of an .ifo file.
type ifo struct {
	magic    string
	metadata map[string]string
}

// readIfo parses .ifo data. The first line is the magic string and the first
// key must be the version.
func readIfo(r io.Reader) (*ifo, error) {
	i := &ifo{
		metadata: map[string]string{},
	}

	s := bufio.NewScanner(r)
	if s.Scan() {
		i.magic = strings.TrimSpace(s.Text())
	}

	n := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !keyRegex.MatchString(key) {
			return nil, fmt.Errorf("%w: %q", errInvalidKey, key)
		}
		if n == 0 && key != "version" {
			return nil, errMissingVersion
		}

		i.metadata[key] = value
		n++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning ifo: %w", err)
	}
	if n == 0 {
		return nil, errMissingVersion
	}

	return i, nil
}

// Value returns the value for the given key.
func (i *ifo) Value(key string) string {
	return i.metadata[key]
}
