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

package aff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestForceUTF8 tests ForceUTF8.
func TestForceUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "iso8859-1",
			input:    "SET ISO8859-1\nTRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'\n",
			expected: "SET UTF-8\nTRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'\n",
		},
		{
			name:     "already utf-8",
			input:    "SET UTF-8\nFLAG long\n",
			expected: "SET UTF-8\nFLAG long\n",
		},
		{
			name:     "crlf kept",
			input:    "SET KOI8-R\r\nTRY x\r\n",
			expected: "SET UTF-8\r\nTRY x\r\n",
		},
		{
			name:     "not on first line",
			input:    "# Affix file\n\nSET microsoft-cp1251\nPFX A Y 1\n",
			expected: "# Affix file\n\nSET UTF-8\nPFX A Y 1\n",
		},
		{
			name:     "only first directive",
			input:    "SET ISO8859-2\nSET ISO8859-15\n",
			expected: "SET UTF-8\nSET ISO8859-15\n",
		},
		{
			name:     "indented directive ignored",
			input:    " SET ISO8859-1\n",
			expected: " SET ISO8859-1\n",
		},
		{
			name:     "other directive with SET prefix",
			input:    "SETTINGS x\nSFX A Y 1\n",
			expected: "SETTINGS x\nSFX A Y 1\n",
		},
		{
			name:     "no directive",
			input:    "FLAG num\n",
			expected: "FLAG num\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, ForceUTF8(test.input)); diff != "" {
				t.Fatalf("ForceUTF8 (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestEncoding tests Encoding.
func TestEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "first line",
			input:    "SET ISO8859-1\nTRY abc\n",
			expected: "ISO8859-1",
		},
		{
			name:     "trailing whitespace",
			input:    "SET UTF-8 \t\r\n",
			expected: "UTF-8",
		},
		{
			name:     "missing",
			input:    "TRY abc\n",
			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Encoding(test.input)); diff != "" {
				t.Fatalf("Encoding (-want, +got):\n%s", diff)
			}
		})
	}
}
