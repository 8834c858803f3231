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

package stardict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-hanzi/internal/testutil"
	"github.com/ianlewis/go-hanzi/lexicon"
	"github.com/ianlewis/go-hanzi/stardict"
)

func text(t stardict.DataType, s string) *stardict.Data {
	return &stardict.Data{Type: t, Data: []byte(s)}
}

// TestOpen tests Open.
func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ifo  string
		err  bool
	}{
		{
			name: "basic open",
			ifo: `StarDict's dict ifo file
version=3.0.0
bookname=hoge
wordcount=1
idxfilesize=13
author=Ian
description=test dictionary`,
		},
		{
			name: "version 2.4.2",
			ifo: `StarDict's dict ifo file
version=2.4.2
bookname=hoge
wordcount=1`,
		},
		{
			name: "bad magic",
			ifo: `Not a StarDict file
version=3.0.0
bookname=hoge
wordcount=1`,
			err: true,
		},
		{
			name: "bad version",
			ifo: `StarDict's dict ifo file
version=1.0.0
bookname=hoge
wordcount=1`,
			err: true,
		},
		{
			name: "missing version",
			ifo: `StarDict's dict ifo file
bookname=hoge
wordcount=1`,
			err: true,
		},
		{
			name: "missing bookname",
			ifo: `StarDict's dict ifo file
version=3.0.0
wordcount=1`,
			err: true,
		},
		{
			name: "bad idxoffsetbits",
			ifo: `StarDict's dict ifo file
version=3.0.0
bookname=hoge
wordcount=1
idxoffsetbits=16`,
			err: true,
		},
		{
			name: "bad sametypesequence",
			ifo: `StarDict's dict ifo file
version=3.0.0
bookname=hoge
wordcount=1
sametypesequence=mZ`,
			err: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteStardict(t, t.TempDir(), &testutil.Stardict{
				Ifo:       test.ifo,
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{text(stardict.UTFTextType, "hello")}},
				},
			})

			s, err := stardict.Open(path)
			if test.err {
				if err == nil {
					t.Fatal("Open: expected failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if want, got := "hoge", s.Bookname(); want != got {
				t.Errorf("Bookname; want: %q, got: %q", want, got)
			}
			if want, got := int64(1), s.WordCount(); want != got {
				t.Errorf("WordCount; want: %d, got: %d", want, got)
			}
		})
	}
}

// TestOpen_badExtension tests that only .ifo files are opened.
func TestOpen_badExtension(t *testing.T) {
	t.Parallel()

	if _, err := stardict.Open(filepath.Join(t.TempDir(), "dictionary.idx")); err == nil {
		t.Fatal("Open: expected failure")
	}
}

// TestStardict_Lexicon tests Stardict.Lexicon.
func TestStardict_Lexicon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dict     *testutil.Stardict
		expected map[string][]lexicon.Entry
	}{
		{
			name: "phonetic and text",
			dict: &testutil.Stardict{
				Headwords: []string{"你好", "学生"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "nǐ hǎo"),
						text(stardict.UTFTextType, "hello\nhi"),
					}},
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "xuésheng"),
						text(stardict.UTFTextType, "student"),
					}},
				},
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐ hǎo", Meaning: "hello; hi"}},
				"学生": {{Pinyin: "xuésheng", Meaning: "student"}},
			},
		},
		{
			name: "sametypesequence",
			dict: &testutil.Stardict{
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "nǐ hǎo"),
						text(stardict.UTFTextType, "hello"),
					}},
				},
				SameTypeSequence: []stardict.DataType{stardict.PhoneticType, stardict.UTFTextType},
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐ hǎo", Meaning: "hello"}},
			},
		},
		{
			name: "html",
			dict: &testutil.Stardict{
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "nǐ hǎo"),
						text(stardict.HTMLType, "<html><body><b>hello</b></body></html>"),
					}},
				},
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐ hǎo", Meaning: "hello"}},
			},
		},
		{
			name: "bracketed numbered pinyin",
			dict: &testutil.Stardict{
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.UTFTextType, "[ni3 hao3] hello"),
					}},
				},
				SameTypeSequence: []stardict.DataType{stardict.UTFTextType},
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐhǎo", Meaning: "hello"}},
			},
		},
		{
			name: "compressed",
			dict: &testutil.Stardict{
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "nǐ hǎo"),
						text(stardict.UTFTextType, "hello"),
					}},
				},
				IdxExt:  ".idx.gz",
				DictExt: ".dict.dz",
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐ hǎo", Meaning: "hello"}},
			},
		},
		{
			name: "64 bit offsets",
			dict: &testutil.Stardict{
				Headwords: []string{"你好"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "nǐ hǎo"),
						text(stardict.UTFTextType, "hello"),
					}},
				},
				IdxOffsetBits: 64,
			},
			expected: map[string][]lexicon.Entry{
				"你好": {{Pinyin: "nǐ hǎo", Meaning: "hello"}},
			},
		},
		{
			name: "synonyms",
			dict: &testutil.Stardict{
				Headwords: []string{"学生", "说"},
				Words: []*stardict.DictWord{
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "xuésheng"),
						text(stardict.UTFTextType, "student"),
					}},
					{Data: []*stardict.Data{
						text(stardict.PhoneticType, "shuō"),
						text(stardict.UTFTextType, "to speak"),
					}},
				},
				Synonyms: []*stardict.SynWord{
					{Word: "學生", OriginalWordIndex: 0},
					{Word: "說", OriginalWordIndex: 1},
				},
			},
			expected: map[string][]lexicon.Entry{
				"学生": {{Pinyin: "xuésheng", Meaning: "student"}},
				"學生": {{Pinyin: "xuésheng", Meaning: "student"}},
				"说":  {{Pinyin: "shuō", Meaning: "to speak"}},
				"說":  {{Pinyin: "shuō", Meaning: "to speak"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteStardict(t, t.TempDir(), test.dict)

			s, err := stardict.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			l, err := s.Lexicon()
			if err != nil {
				t.Fatalf("Lexicon: %v", err)
			}

			got := map[string][]lexicon.Entry{}
			for _, w := range l.Words() {
				got[w] = l.Lookup(w)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Lexicon (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestStardict_Lexicon_missingDict tests that a missing .dict file is an
// error.
func TestStardict_Lexicon_missingDict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteStardict(t, dir, &testutil.Stardict{
		Headwords: []string{"你好"},
		Words: []*stardict.DictWord{
			{Data: []*stardict.Data{text(stardict.UTFTextType, "hello")}},
		},
	})
	if err := os.Remove(filepath.Join(dir, "dictionary.dict")); err != nil {
		t.Fatal(err)
	}

	s, err := stardict.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Lexicon(); err == nil {
		t.Fatal("Lexicon: expected failure")
	}
}

// TestOpenAll tests OpenAll.
func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"one", "two"} {
		testutil.WriteStardict(t, dir, &testutil.Stardict{
			Name:      name,
			Headwords: []string{"你好"},
			Words: []*stardict.DictWord{
				{Data: []*stardict.Data{text(stardict.UTFTextType, "hello")}},
			},
		})
	}
	testutil.WriteFile(t, filepath.Join(dir, "bad.ifo"), []byte("bad magic\nversion=3.0.0"))

	dicts, errs := stardict.OpenAll(dir)
	if want, got := 2, len(dicts); want != got {
		t.Errorf("dicts; want: %d, got: %d", want, got)
	}
	if want, got := 1, len(errs); want != got {
		t.Errorf("errs; want: %d, got: %d", want, got)
	}
}
