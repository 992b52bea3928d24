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
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictfetch"
)

// fetchAction downloads the selected dictionaries.
func fetchAction(c *cli.Context) error {
	log, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	catalog, err := loadCatalog(c)
	if err != nil {
		return err
	}

	root := c.String("dest")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrDictfetch, err)
	}

	a := dictfetch.NewAcquirer(&dictfetch.Options{
		BaseURL: c.String("base-url"),
		HTTPClient: &http.Client{
			Timeout: c.Duration("timeout"),
		},
		Logger: log,
	})
	report := dictfetch.AcquireAll(c.Context, a, root, catalog, log)

	printReport(c.App.Writer, report)
	fmt.Fprintf(c.App.Writer, "Done: %d acquired, %d already present, %d failed.\n",
		report.Acquired(), report.Skipped(), report.Failed())

	return nil
}

// printReport prints a table with one row per dictionary.
func printReport(w io.Writer, report *dictfetch.Report) {
	tbl := table.New("Code", "Status", "License", "Error").WithWriter(w)
	for _, res := range report.Results {
		license := "-"
		if res.Status == dictfetch.StatusAcquired {
			license = "not found"
			if res.License {
				license = "ok"
			}
		}
		var errText string
		if res.Err != nil {
			errText = res.Err.Error()
		}
		tbl.AddRow(res.Code, res.Status, license, errText)
	}
	tbl.Print()
}
