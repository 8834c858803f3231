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
	"errors"
	"strings"
	"testing"
)

// TestReadIfo tests readIfo.
func TestReadIfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		expect func(*testing.T, *ifo)
		err    error
	}{
		{
			name: "magic and version",
			data: `test magic
version=3.0.0
bookname = CC-CEDICT `,
			expect: func(t *testing.T, i *ifo) {
				t.Helper()
				if want, got := "test magic", i.magic; want != got {
					t.Fatalf("magic; want: %q, got: %q", want, got)
				}
				if want, got := "3.0.0", i.Value("version"); want != got {
					t.Fatalf("version; want: %q, got: %q", want, got)
				}
				if want, got := "CC-CEDICT", i.Value("bookname"); want != got {
					t.Fatalf("bookname; want: %q, got: %q", want, got)
				}
			},
		},
		{
			name: "blank lines",
			data: "test magic\n\nversion=2.4.2\n\n",
			expect: func(t *testing.T, i *ifo) {
				t.Helper()
				if want, got := "2.4.2", i.Value("version"); want != got {
					t.Fatalf("version; want: %q, got: %q", want, got)
				}
			},
		},
		{
			name: "missing version",
			data: `test magic`,
			err:  errMissingVersion,
		},
		{
			name: "version not first",
			data: "test magic\nbookname=hoge\nversion=3.0.0",
			err:  errMissingVersion,
		},
		{
			name: "invalid key",
			data: "test magic\nversion=3.0.0\nbook name=hoge",
			err:  errInvalidKey,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			i, err := readIfo(strings.NewReader(test.data))
			if !errors.Is(err, test.err) {
				t.Fatalf("readIfo; want: %v, got: %v", test.err, err)
			}
			if test.expect != nil {
				test.expect(t, i)
			}
		})
	}
}
