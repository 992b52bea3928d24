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

// Package dictfetch downloads Hunspell spell-check dictionaries from the
// LibreOffice dictionaries repository into a local directory tree.
//
// Each dictionary is written to its own directory, named by its language
// code, containing:
//   1. index.dic: the word list.
//   2. index.aff: the affix rules. The SET directive is rewritten to declare
//      UTF-8.
//   3. .spdx: the SPDX license expression of the dictionary.
//   4. .source: the URL of the upstream repository.
//   5. license: the upstream license text, if it could be downloaded.
//
// All text files are normalized: byte order marks and carriage returns are
// removed, trailing whitespace is stripped from each line, and every file
// ends with exactly one newline.
//
// A dictionary whose index.dic already exists is not downloaded again.
package dictfetch
