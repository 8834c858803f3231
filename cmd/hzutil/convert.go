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

package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-hanzi/cedict"
	"github.com/ianlewis/go-hanzi/lexicon"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert a CC-CEDICT file to a lexicon",
	ArgsUsage: "CEDICT OUT",
	Description: `Convert the CC-CEDICT text file CEDICT, optionally gzip compressed,
to a lexicon file. OUT is gzip compressed if it ends in .gz.`,
	Flags: []cli.Flag{
		helpFlag(),
	},
	HideHelp:     true,
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			check(cli.ShowSubcommandHelp(c))
			return nil
		}

		if c.NArg() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		src, dst := c.Args().Get(0), c.Args().Get(1)

		e, err := newEnv(c)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		l, err := convertCEDICT(e.log, src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHzutil, err)
		}

		if err := lexicon.Save(dst, l); err != nil {
			return fmt.Errorf("%w: %w", ErrHzutil, err)
		}
		e.log.Info("wrote lexicon", zap.String("path", dst), zap.Int("words", l.Len()))
		return nil
	},
}

func convertCEDICT(log *zap.Logger, path string) (*lexicon.Lexicon, error) {
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

	s := cedict.NewScanner(r)
	var b lexicon.Builder
	for s.Scan() {
		rec := s.Record()
		b.Add(rec.Simplified, lexicon.Entry{
			Pinyin:  rec.Pinyin,
			Meaning: rec.Meaning,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	if n := s.Invalid(); n > 0 {
		log.Warn("skipped invalid lines", zap.String("path", path), zap.Int("lines", n))
	}
	return b.Build(), nil
}
