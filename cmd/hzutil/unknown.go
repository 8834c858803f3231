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
	"go.uber.org/zap"

	"github.com/ianlewis/go-hanzi/render"
	"github.com/ianlewis/go-hanzi/segment"
)

var unknownCommand = &cli.Command{
	Name:      "unknown",
	Usage:     "List words that are not in the curriculum",
	ArgsUsage: "[FILE]",
	Description: `List the lexicon words in FILE, or standard input, that are not
in the curriculum, in order of first appearance.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (table or csv)",
			Aliases: []string{"f"},
			Value:   "table",
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
		if format != "table" && format != "csv" {
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

		s, err := e.segmenter(nil)
		if err != nil {
			return err
		}

		words := segment.CollectUnknown(s.Segment(text))
		e.log.Debug("collected unknown words", zap.Int("words", len(words)))

		if format == "csv" {
			if err := render.UnknownCSV(c.App.Writer, words); err != nil {
				return fmt.Errorf("%w: %w", ErrHzutil, err)
			}
			return nil
		}
		render.UnknownTable(c.App.Writer, words)
		return nil
	},
}
