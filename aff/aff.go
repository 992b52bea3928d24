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

// Package aff implements helpers for Hunspell affix (.aff) files.
//
// An affix file may declare the character encoding of the dictionary with a
// SET directive, usually on its first line:
//
//	SET ISO8859-1
package aff

import (
	"regexp"
	"strings"
)

// UTF8 is the SET value for UTF-8 encoded dictionaries.
const UTF8 = "UTF-8"

// setPattern matches a SET directive line. The value runs to the end of the
// line.
var setPattern = regexp.MustCompile(`(?m)^SET[ \t]+(\S[^\r\n]*)`)

// Encoding returns the value of the first SET directive in text, or an empty
// string if text has no SET directive.
func Encoding(text string) string {
	m := setPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimRight(m[1], " \t")
}

// ForceUTF8 replaces the first SET directive in text with "SET UTF-8". The
// declared encoding is overwritten whatever it was; the rest of the text is
// not transcoded. Text without a SET directive is returned unchanged.
func ForceUTF8(text string) string {
	loc := setPattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + "SET " + UTF8 + text[loc[1]:]
}
