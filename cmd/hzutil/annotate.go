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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzi/render"
	"github.com/ianlewis/go-hanzi/segment"
)

var annotateCommand = &cli.Command{
	Name:      "annotate",
	Usage:     "Annotate text with pinyin and meaning",
	ArgsUsage: "[FILE]",
	Description: `Annotate the text in FILE, or standard input, with pinyin and
meaning. Known words are taken from the curriculum.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (text or html)",
			Aliases: []string{"f"},
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:               "keep-skipped",
			Usage:              "keep whitespace and characters that match no word",
			DisableDefaultText: true,
		},
		helpFlag(),
	},
	HideHelp:     true,
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			check(cli.ShowSubcommandHelp(c))
			return nil
		}

		format := c.String("format")
		if format != "text" && format != "html" {
			return fmt.Errorf("%w: unsupported format %q", ErrFlagParse, format)
		}

		text, err := readInput(c)
		if err != nil {
			return err
		}

		e, err := newEnv(c)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		s, err := e.segmenter(&segment.Options{
			KeepSkipped: c.Bool("keep-skipped"),
		})
		if err != nil {
			return err
		}

		segs := s.Segment(text)
		if format == "html" {
			err = render.HTML(c.App.Writer, segs)
		} else {
			err = render.Text(c.App.Writer, segs)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHzutil, err)
		}
		return nil
	},
}
