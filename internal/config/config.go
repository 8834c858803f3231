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

// Package config loads the hzutil configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid indicates that a configuration value is invalid.
var ErrInvalid = errors.New("invalid configuration")

// Config is the hzutil configuration.
type Config struct {
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Curriculum CurriculumConfig `yaml:"curriculum"`
	Log        LogConfig        `yaml:"log"`
}

// LexiconConfig configures the general lexicon.
type LexiconConfig struct {
	// Path is a lexicon JSON file (optionally .gz or .dz compressed) or a
	// StarDict .ifo file.
	Path string `yaml:"path" env:"HANZI_LEXICON"`
}

// CurriculumConfig configures the curriculum.
type CurriculumConfig struct {
	Path string `yaml:"path" env:"HANZI_CURRICULUM"`

	// Delimiter is the field delimiter. "tab" may be used in place of a tab
	// character. If empty, the delimiter is chosen by file extension.
	Delimiter string `yaml:"delimiter" env:"HANZI_CURRICULUM_DELIMITER"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"  env:"HANZI_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"HANZI_LOG_FORMAT" env-default:"console"`
}

// Load reads the configuration. Values are taken from the environment, then
// the YAML file at path, then defaults. If path is empty only the environment
// and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	if _, err := c.Curriculum.Comma(); err != nil {
		return err
	}

	return nil
}

// Comma returns the curriculum field delimiter or zero if it is chosen by file
// extension.
func (c *CurriculumConfig) Comma() (rune, error) {
	d := c.Delimiter
	switch d {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(d)
	if r == utf8.RuneError || size != len(d) || r == '\n' || r == '\r' || r == '"' {
		return 0, fmt.Errorf("%w: curriculum.delimiter %q", ErrInvalid, d)
	}
	return r, nil
}
