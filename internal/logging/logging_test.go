// Copyright 2026 Ian Lewis
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

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// TestNew_json tests JSON output and level filtering.
func TestNew_json(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Debug("hidden")
	l.Info("loaded lexicon", zap.Int("words", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if want, got := 1, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d:\n%s", want, got, buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want, got := "loaded lexicon", entry["msg"]; want != got {
		t.Errorf("msg; want: %v, got: %v", want, got)
	}
	if want, got := float64(3), entry["words"]; want != got {
		t.Errorf("words; want: %v, got: %v", want, got)
	}
}

// TestNew_console tests console output.
func TestNew_console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, "warn", "console")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("hidden")
	l.Warn("skipped rows")

	if got := buf.String(); !strings.Contains(got, "skipped rows") || strings.Contains(got, "hidden") {
		t.Errorf("unexpected output: %q", got)
	}
}

// TestNew_invalid tests that invalid levels and formats are rejected.
func TestNew_invalid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := New(&buf, "verbose", "json"); err == nil {
		t.Error("New: expected failure for level")
	}
	if _, err := New(&buf, "info", "xml"); !errors.Is(err, ErrFormat) {
		t.Errorf("New; want: %v, got: %v", ErrFormat, err)
	}
}
