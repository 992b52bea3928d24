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

// Package normalize canonicalizes downloaded dictionary text before it is
// written to disk.
//
// Normalized text has no leading byte order mark, uses LF line endings only,
// has no trailing spaces or tabs on any line, and ends with exactly one LF.
// Normalization is idempotent.
package normalize

import (
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dictfetch/internal/folding"
)

// Transformer returns a new [transform.Transformer] that normalizes text.
func Transformer() transform.Transformer {
	return &folding.LineFolder{}
}

// Normalize returns the normalized form of text.
func Normalize(text string) string {
	s, _, err := transform.String(Transformer(), text)
	if err != nil {
		// LineFolder only reports short buffer conditions, which
		// transform.String handles by itself.
		panic(err)
	}
	return s
}
