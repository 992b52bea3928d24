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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dictfetch"
	"github.com/ianlewis/go-dictfetch/internal/testutil"
)

const testCatalog = `
- code: aa
  folder: aa_XX
  name: Alpha
  spdx: MIT
  license: LICENSE
- code: bb
  folder: bb
  name: Beta
  spdx: GPL-3.0-only
  license: COPYING
  dic: bb_XX.dic
  aff: bb_XX.aff
`

// writeCatalog writes the test catalog to a temporary file.
func writeCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// runApp runs the app with args and returns its output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newDictfetchApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"dictfetch"}, args...))
	return out.String(), err
}

// TestApp_fetch tests a full run against a fake upstream.
func TestApp_fetch(t *testing.T) {
	t.Parallel()

	s := testutil.NewServer(t, map[string]string{
		"/aa_XX/aa_XX.dic": "1\r\nalpha\r\n",
		"/aa_XX/aa_XX.aff": "SET ISO8859-1\r\n",
		"/aa_XX/LICENSE":   "MIT License\r\n",
		// bb's word list is missing.
		"/bb/bb_XX.aff": "SET UTF-8\n",
	})
	dest := filepath.Join(t.TempDir(), "dicts")

	out, err := runApp(t,
		"--dest", dest,
		"--base-url", s.URL,
		"--catalog", writeCatalog(t),
		"--log-level", "error",
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out, "Done: 1 acquired, 0 already present, 1 failed.") {
		t.Errorf("unexpected output:\n%s", out)
	}

	b, err := os.ReadFile(filepath.Join(dest, "aa", "index.aff"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff("SET UTF-8\n", string(b)); diff != "" {
		t.Errorf("index.aff (-want, +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(dest, "bb")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat: want ErrNotExist, got: %v", err)
	}

	// A second run skips the acquired dictionary without downloading it.
	before := len(s.Requests())
	out, err = runApp(t,
		"--dest", dest,
		"--base-url", s.URL,
		"--catalog", writeCatalog(t),
		"--only", "aa",
		"--log-level", "error",
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Done: 0 acquired, 1 already present, 0 failed.") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if want, got := before, len(s.Requests()); want != got {
		t.Errorf("Requests; want: %d, got: %d", want, got)
	}
}

// TestApp_list tests the list command.
func TestApp_list(t *testing.T) {
	t.Parallel()

	out, err := runApp(t, "--catalog", writeCatalog(t), "list")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{"aa_XX.dic", "bb_XX.aff", "GPL-3.0-only"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestApp_errors tests command errors.
func TestApp_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "unknown flag",
			args: []string{"--no-such-flag"},
			err:  ErrFlagParse,
		},
		{
			name: "bad log level",
			args: []string{"--log-level", "loud"},
			err:  ErrFlagParse,
		},
		{
			name: "unknown dictionary",
			args: []string{"--only", "zz", "list"},
			err:  dictfetch.ErrCatalog,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := runApp(t, test.args...)
			if !errors.Is(err, test.err) {
				t.Fatalf("Run: want %v, got: %v", test.err, err)
			}
		})
	}
}
