// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

// TestLineFolder_chunked feeds the input one byte at a time so that byte
// order marks and CRLF pairs are split across Transform calls.
func TestLineFolder_chunked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "\n",
		},
		{
			name:     "split byte order mark",
			input:    "\uFEFFSET UTF-8",
			expected: "SET UTF-8\n",
		},
		{
			name:     "partial byte order mark prefix is content",
			input:    "\xEF\xBBx",
			expected: "\xEF\xBBx\n",
		},
		{
			name:     "split crlf",
			input:    "foo\r\nbar\r\n",
			expected: "foo\nbar\n",
		},
		{
			name:     "held whitespace",
			input:    "foo \t bar \t \r\n",
			expected: "foo \t bar\n",
		},
		{
			name:     "trailing newlines",
			input:    "foo\r\r\r\n\n",
			expected: "foo\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := transform.NewReader(iotest.OneByteReader(strings.NewReader(test.input)), &LineFolder{})
			b, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Fatalf("LineFolder (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestLineFolder_longRuns tests that held line breaks and whitespace longer
// than the reader's buffer are written out once content follows.
func TestLineFolder_longRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line breaks",
			input:    "x" + strings.Repeat("\n", 5000) + "y",
			expected: "x" + strings.Repeat("\n", 5000) + "y\n",
		},
		{
			name:     "crlf line breaks",
			input:    "x" + strings.Repeat("\r\n", 5000) + "y",
			expected: "x" + strings.Repeat("\n", 5000) + "y\n",
		},
		{
			name:     "spaces",
			input:    "x" + strings.Repeat(" ", 5000) + "y",
			expected: "x" + strings.Repeat(" ", 5000) + "y\n",
		},
		{
			name:     "line breaks then indentation",
			input:    "x" + strings.Repeat("\n", 3000) + strings.Repeat("\t", 3000) + "y",
			expected: "x" + strings.Repeat("\n", 3000) + strings.Repeat("\t", 3000) + "y\n",
		},
		{
			name:     "trailing run",
			input:    "x" + strings.Repeat(" \n", 5000),
			expected: "x\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := transform.NewReader(strings.NewReader(test.input), &LineFolder{})
			b, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Fatalf("LineFolder (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestLineFolder_Reset tests that a reset folder can be reused.
func TestLineFolder_Reset(t *testing.T) {
	t.Parallel()

	f := &LineFolder{}
	for i := 0; i < 2; i++ {
		got, _, err := transform.String(f, "\uFEFFfoo  \r\nbar\n\n")
		if err != nil {
			t.Fatalf("transform.String: %v", err)
		}
		if diff := cmp.Diff("foo\nbar\n", got); diff != "" {
			t.Fatalf("transform.String (-want, +got):\n%s", diff)
		}
	}
}
