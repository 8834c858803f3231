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

// TestReadSyn tests readSyn.
func TestReadSyn(t *testing.T) {
	t.Parallel()

	expected := []*SynWord{
		{Word: "學生", OriginalWordIndex: 0},
		{Word: "說話", OriginalWordIndex: 1 << 20},
	}

	words, err := readSyn(bytes.NewReader(MakeSyn(expected)))
	if err != nil {
		t.Fatalf("readSyn: %v", err)
	}
	if diff := cmp.Diff(expected, words); diff != "" {
		t.Errorf("readSyn (-want, +got):\n%s", diff)
	}
}

// TestReadSyn_truncated tests that a truncated synonym file is an error.
func TestReadSyn_truncated(t *testing.T) {
	t.Parallel()

	b := MakeSyn([]*SynWord{{Word: "學生", OriginalWordIndex: 3}})
	if _, err := readSyn(bytes.NewReader(b[:len(b)-2])); !errors.Is(err, errTruncatedSyn) {
		t.Fatalf("readSyn; want: %v, got: %v", errTruncatedSyn, err)
	}
}
