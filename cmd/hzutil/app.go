// Copyright 2025 Ian Lewis
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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-hanzi/curriculum"
	"github.com/ianlewis/go-hanzi/internal/config"
	"github.com/ianlewis/go-hanzi/internal/logging"
	"github.com/ianlewis/go-hanzi/lexicon"
	"github.com/ianlewis/go-hanzi/segment"
	"github.com/ianlewis/go-hanzi/stardict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeDictionaryNotLoaded is the exit code when no lexicon could be
	// loaded.
	ExitCodeDictionaryNotLoaded
)

// ErrHzutil is a parent error for all command errors.
var ErrHzutil = errors.New("hzutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrHzutil)

// ErrNotFound indicates that a word was not found in any dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrHzutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `hzutil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func helpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "help",
		Usage:              "print this help text and exit",
		Aliases:            []string{"h"},
		DisableDefaultText: true,
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"), versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHzutil, err)
	}
	return nil
}

// env is the configuration and logger shared by commands.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// newEnv loads the configuration and applies global flags on top of it.
func newEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHzutil, err)
	}

	if c.IsSet("lexicon") {
		cfg.Lexicon.Path = c.String("lexicon")
	}
	if c.IsSet("curriculum") {
		cfg.Curriculum.Path = c.String("curriculum")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
	}

	log, err := logging.New(c.App.ErrWriter, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHzutil, err)
	}

	return &env{
		cfg: cfg,
		log: log,
	}, nil
}

// lexicon loads the configured lexicon, or the first lexicon found in the
// default locations.
func (e *env) lexicon() (*lexicon.Lexicon, error) {
	path := e.cfg.Lexicon.Path
	if path == "" {
		locs := lexiconLocations()
		path = findFile(locs)
		if path == "" {
			return nil, fmt.Errorf("%w: no lexicon in %s", segment.ErrDictionaryNotLoaded, strings.Join(locs, ", "))
		}
	}

	var l *lexicon.Lexicon
	if strings.EqualFold(filepath.Ext(path), ".ifo") {
		s, err := stardict.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", segment.ErrDictionaryNotLoaded, err)
		}
		e.log.Debug("opened stardict", zap.String("bookname", s.Bookname()), zap.Int64("wordcount", s.WordCount()))
		if l, err = s.Lexicon(); err != nil {
			return nil, fmt.Errorf("%w: %w", segment.ErrDictionaryNotLoaded, err)
		}
	} else {
		var err error
		if l, err = lexicon.Open(path); err != nil {
			return nil, fmt.Errorf("%w: %w", segment.ErrDictionaryNotLoaded, err)
		}
	}

	e.log.Info("loaded lexicon", zap.String("path", path), zap.Int("words", l.Len()))
	return l, nil
}

// curriculum loads the configured curriculum. It returns nil if no
// curriculum is configured.
func (e *env) curriculum() (*curriculum.Lexicon, error) {
	path := e.cfg.Curriculum.Path
	if path == "" {
		e.log.Debug("no curriculum configured")
		return nil, nil
	}

	comma, err := e.cfg.Curriculum.Comma()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHzutil, err)
	}

	l, err := curriculum.Open(path, &curriculum.Options{
		Comma:  comma,
		Logger: e.log.Named("curriculum"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHzutil, err)
	}

	e.log.Info("loaded curriculum", zap.String("path", path), zap.Int("words", l.Len()))
	return l, nil
}

// segmenter loads both dictionaries and returns a new Segmenter.
func (e *env) segmenter(opts *segment.Options) (*segment.Segmenter, error) {
	lex, err := e.lexicon()
	if err != nil {
		return nil, err
	}
	cur, err := e.curriculum()
	if err != nil {
		return nil, err
	}
	s, err := segment.New(lex, cur, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHzutil, err)
	}
	return s, nil
}

// readInput reads the file named by the only argument, or standard input if
// there are no arguments.
func readInput(c *cli.Context) (string, error) {
	switch c.NArg() {
	case 0:
		b, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", fmt.Errorf("%w: reading input: %w", ErrHzutil, err)
		}
		return string(b), nil
	case 1:
		b, err := os.ReadFile(c.Args().First())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHzutil, err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
	}
}

func findFile(paths []string) string {
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func newHzutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Annotate Chinese text with pinyin and meaning.",
		Description: strings.Join([]string{
			"Chinese text annotation utility written in Go.",
			"http://github.com/ianlewis/go-hanzi",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from YAML `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"HANZI_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Usage:   "read the lexicon from `FILE` (.json, .json.gz, .json.dz or StarDict .ifo)",
				Aliases: []string{"l"},
			},
			&cli.StringFlag{
				Name:    "curriculum",
				Usage:   "read known words from `FILE` (.csv or .tsv)",
				Aliases: []string{"k"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			helpFlag(),
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			annotateCommand,
			unknownCommand,
			lookupCommand,
			convertCommand,
			listCommand,
		},
	}
}
