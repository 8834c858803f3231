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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-hanzi/stardict"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List StarDict dictionaries",
	ArgsUsage: "DIR...",
	Description: `List the StarDict dictionaries under each DIR. The .ifo file of a
listed dictionary can be used as the lexicon.`,
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

		if c.NArg() == 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		e, err := newEnv(c)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		var dicts []*stardict.Stardict
		var errs []error
		for _, dir := range c.Args().Slice() {
			openDicts, openErrs := stardict.OpenAll(dir)
			dicts = append(dicts, openDicts...)
			errs = append(errs, openErrs...)
		}
		for _, err := range errs {
			e.log.Warn("opening dictionary", zap.Error(err))
		}

		w := c.App.Writer
		for _, dict := range dicts {
			fmt.Fprintf(w, "Name:        %s\n", dict.Bookname())
			fmt.Fprintf(w, "Author:      %s\n", dict.Author())
			fmt.Fprintf(w, "Email:       %s\n", dict.Email())
			fmt.Fprintf(w, "Word Count:  %d\n", dict.WordCount())
			fmt.Fprintln(w)
		}

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d dictionaries could not be opened", ErrHzutil, len(errs))
		}
		return nil
	},
}
