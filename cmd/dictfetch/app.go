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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictfetch"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// defaultDest is the default dictionaries root directory.
const defaultDest = "dictionaries"

// ErrDictfetch is a parent error for all command errors.
var ErrDictfetch = errors.New("dictfetch")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDictfetch)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// loadCatalog returns the catalog selected by the --catalog and --only flags.
func loadCatalog(c *cli.Context) (dictfetch.Catalog, error) {
	catalog := dictfetch.DefaultCatalog()
	if path := c.String("catalog"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDictfetch, err)
		}
		defer f.Close()

		catalog, err = dictfetch.LoadCatalog(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if only := c.StringSlice("only"); len(only) > 0 {
		return catalog.Filter(only...)
	}
	return catalog, nil
}

func newDictfetchApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Download Hunspell spell-check dictionaries.",
		Description: strings.Join([]string{
			"Downloads Hunspell dictionaries from the LibreOffice dictionaries",
			"repository, normalizes them, and writes one directory per language.",
			"Dictionaries that are already present are skipped.",
			"http://github.com/ianlewis/go-dictfetch",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dest",
				Usage:   "write dictionaries under `DIR`",
				Aliases: []string{"o"},
				Value:   defaultDest,
				EnvVars: []string{"DICTFETCH_DEST"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "download dictionary files from `URL`",
				Value:   dictfetch.BaseURL,
				EnvVars: []string{"DICTFETCH_BASE_URL"},
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "read the dictionary catalog from YAML `FILE` instead of the built-in catalog",
			},
			&cli.StringSliceFlag{
				Name:  "only",
				Usage: "only process the dictionary with language `CODE` (may be repeated)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per request timeout; 0 means no timeout",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log at `LEVEL` (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"DICTFETCH_LOG_LEVEL"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
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
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}

			if c.Bool("version") {
				return printVersion(c)
			}

			return fetchAction(c)
		},
		Commands: []*cli.Command{
			listCommand,
		},
	}
}
