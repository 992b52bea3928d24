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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "list the dictionaries in the catalog",
	Action: func(c *cli.Context) error {
		catalog, err := loadCatalog(c)
		if err != nil {
			return err
		}

		tbl := table.New("Code", "Name", "Folder", "Word List", "Affix", "License").
			WithWriter(c.App.Writer)
		for _, d := range catalog {
			tbl.AddRow(d.Code, d.DisplayName, d.SourceFolder, d.WordListFile(), d.AffixFile(), d.LicenseID)
		}
		tbl.Print()

		return nil
	},
}
