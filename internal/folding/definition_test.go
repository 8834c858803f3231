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

package folding

import (
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestDefinitionFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \t\r\n　",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "internal spaces",
			input:    "to \t  walk",
			expected: "to walk",
		},
		{
			name:     "line breaks",
			input:    "hello\r\n\r\nhi\nhey\n",
			expected: "hello; hi; hey",
		},
		{
			name:     "line break after semicolon",
			input:    "hello;\nhi",
			expected: "hello; hi",
		},
		{
			name:     "ideographic space",
			input:    "你好　世界",
			expected: "你好 世界",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&DefinitionFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if want := test.expected; want != got {
				t.Fatalf("want: %q, got: %q", want, got)
			}
		})
	}
}

// TestDefinitionFolder_shortDst checks that no runes are lost when the
// destination buffer is small.
func TestDefinitionFolder_shortDst(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("你好\n世界 ", 1000)
	expected := strings.TrimSuffix(strings.Repeat("你好; 世界 ", 1000), " ")

	r := transform.NewReader(strings.NewReader(input), &DefinitionFolder{})
	var b strings.Builder
	buf := make([]byte, 7)
	for {
		n, err := r.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}

	if want, got := expected, b.String(); want != got {
		t.Fatalf("want: %q, got: %q", want, got)
	}
}
