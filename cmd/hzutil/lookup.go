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
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzi/render"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up a word",
	ArgsUsage: "WORD",
	Description: `Print the curriculum and lexicon entries for WORD. With --prefix,
print the entries for every word that begins with WORD.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "prefix",
			Usage:              "look up words beginning with WORD",
			Aliases:            []string{"p"},
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

		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		query := c.Args().First()

		e, err := newEnv(c)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		lex, err := e.lexicon()
		if err != nil {
			return err
		}
		cur, err := e.curriculum()
		if err != nil {
			return err
		}

		words := []string{query}
		if c.Bool("prefix") {
			words = append(lex.WithPrefix(query), cur.WithPrefix(query)...)
			slices.Sort(words)
			words = slices.Compact(words)
		}

		var entries []render.Entry
		for _, w := range words {
			for _, ce := range cur.Lookup(w) {
				entries = append(entries, render.Entry{
					Source:  "curriculum",
					Word:    w,
					Pinyin:  ce.Pinyin,
					Meaning: ce.Meaning,
					Chapter: ce.Chapter,
				})
			}
			for _, le := range lex.Lookup(w) {
				entries = append(entries, render.Entry{
					Source:  "lexicon",
					Word:    w,
					Pinyin:  le.Pinyin,
					Meaning: le.Meaning,
				})
			}
		}

		if len(entries) == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, query)
		}

		render.EntryTable(c.App.Writer, entries)
		return nil
	},
}
