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

package dictfetch

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// SourceURL is the upstream dictionary repository. It is written to each
	// dictionary's .source file.
	SourceURL = "https://github.com/LibreOffice/dictionaries"

	// BaseURL is the location of the raw files of the pinned snapshot of
	// SourceURL.
	BaseURL = "https://raw.githubusercontent.com/LibreOffice/dictionaries/libreoffice-24-8"
)

// Catalog is an ordered list of dictionaries.
type Catalog []Descriptor

var defaultCatalog = Catalog{
	{Code: "bg", SourceFolder: "bg_BG", DisplayName: "Bulgarian", LicenseID: "GPL-2.0-or-later", LicenseFile: "README.txt"},
	{Code: "ca", SourceFolder: "ca", DisplayName: "Catalan", LicenseID: "GPL-2.0-or-later", LicenseFile: "LICENSES-en.txt", WordListFileOverride: "dictionaries/ca.dic", AffixFileOverride: "dictionaries/ca.aff"},
	{Code: "cs", SourceFolder: "cs_CZ", DisplayName: "Czech", LicenseID: "GPL-2.0-only", LicenseFile: "README_cs.txt"},
	{Code: "da", SourceFolder: "da_DK", DisplayName: "Danish", LicenseID: "GPL-2.0-only", LicenseFile: "README_da_DK.txt"},
	{Code: "de", SourceFolder: "de", DisplayName: "German", LicenseID: "GPL-2.0-or-later OR GPL-3.0-or-later", LicenseFile: "COPYING_GPLv3", WordListFileOverride: "de_DE_frami.dic", AffixFileOverride: "de_DE_frami.aff"},
	{Code: "de-AT", SourceFolder: "de", DisplayName: "German (Austria)", LicenseID: "GPL-2.0-or-later OR GPL-3.0-or-later", LicenseFile: "COPYING_GPLv3", WordListFileOverride: "de_AT_frami.dic", AffixFileOverride: "de_AT_frami.aff"},
	{Code: "de-CH", SourceFolder: "de", DisplayName: "German (Switzerland)", LicenseID: "GPL-2.0-or-later OR GPL-3.0-or-later", LicenseFile: "COPYING_GPLv3", WordListFileOverride: "de_CH_frami.dic", AffixFileOverride: "de_CH_frami.aff"},
	{Code: "el", SourceFolder: "el_GR", DisplayName: "Greek", LicenseID: "MPL-1.1", LicenseFile: "README_el_GR.txt"},
	{Code: "en", SourceFolder: "en", DisplayName: "English (United States)", LicenseID: "MIT AND BSD-3-Clause", LicenseFile: "README_en_US.txt", WordListFileOverride: "en_US.dic", AffixFileOverride: "en_US.aff"},
	{Code: "en-AU", SourceFolder: "en", DisplayName: "English (Australia)", LicenseID: "LGPL-2.1-or-later", LicenseFile: "README_en_AU.txt", WordListFileOverride: "en_AU.dic", AffixFileOverride: "en_AU.aff"},
	{Code: "en-CA", SourceFolder: "en", DisplayName: "English (Canada)", LicenseID: "MIT AND BSD-3-Clause", LicenseFile: "README_en_CA.txt", WordListFileOverride: "en_CA.dic", AffixFileOverride: "en_CA.aff"},
	{Code: "en-GB", SourceFolder: "en", DisplayName: "English (United Kingdom)", LicenseID: "LGPL-2.1-or-later", LicenseFile: "README_en_GB.txt", WordListFileOverride: "en_GB.dic", AffixFileOverride: "en_GB.aff"},
	{Code: "es", SourceFolder: "es", DisplayName: "Spanish", LicenseID: "LGPL-3.0-or-later OR GPL-3.0-or-later OR MPL-1.1", LicenseFile: "LICENSE.md", WordListFileOverride: "es_ES.dic", AffixFileOverride: "es_ES.aff"},
	{Code: "fr", SourceFolder: "fr_FR", DisplayName: "French", LicenseID: "MPL-2.0", LicenseFile: "README_fr.txt", WordListFileOverride: "fr.dic", AffixFileOverride: "fr.aff"},
	{Code: "hu", SourceFolder: "hu_HU", DisplayName: "Hungarian", LicenseID: "MPL-2.0 OR LGPL-3.0-or-later", LicenseFile: "README_hu_HU.txt"},
	{Code: "it", SourceFolder: "it_IT", DisplayName: "Italian", LicenseID: "GPL-3.0-only", LicenseFile: "README.txt"},
	{Code: "nb", SourceFolder: "no", DisplayName: "Norwegian Bokmål", LicenseID: "GPL-2.0-only", LicenseFile: "COPYING", WordListFileOverride: "nb_NO.dic", AffixFileOverride: "nb_NO.aff"},
	{Code: "nl", SourceFolder: "nl_NL", DisplayName: "Dutch", LicenseID: "BSD-3-Clause OR CC-BY-3.0", LicenseFile: "README_NL.txt"},
	{Code: "nn", SourceFolder: "no", DisplayName: "Norwegian Nynorsk", LicenseID: "GPL-2.0-only", LicenseFile: "COPYING", WordListFileOverride: "nn_NO.dic", AffixFileOverride: "nn_NO.aff"},
	{Code: "pl", SourceFolder: "pl_PL", DisplayName: "Polish", LicenseID: "GPL-2.0-only OR LGPL-2.1-only OR MPL-1.1 OR Apache-2.0 OR CC-BY-SA-4.0", LicenseFile: "README_en.txt"},
	{Code: "pt", SourceFolder: "pt_PT", DisplayName: "Portuguese (Portugal)", LicenseID: "LGPL-3.0-only OR MPL-1.1", LicenseFile: "README_pt_PT.txt"},
	{Code: "pt-BR", SourceFolder: "pt_BR", DisplayName: "Portuguese (Brazil)", LicenseID: "LGPL-3.0-only OR MPL-1.1", LicenseFile: "README_pt_BR.txt"},
	{Code: "ro", SourceFolder: "ro", DisplayName: "Romanian", LicenseID: "GPL-2.0-only OR LGPL-2.1-only OR MPL-1.1", LicenseFile: "COPYING.GPL", WordListFileOverride: "ro_RO.dic", AffixFileOverride: "ro_RO.aff"},
	{Code: "ru", SourceFolder: "ru_RU", DisplayName: "Russian", LicenseID: "BSD-3-Clause", LicenseFile: "README_ru_RU.txt"},
	{Code: "sv", SourceFolder: "sv_SE", DisplayName: "Swedish", LicenseID: "LGPL-3.0-only", LicenseFile: "LICENSE_en_US.txt"},
	{Code: "uk", SourceFolder: "uk_UA", DisplayName: "Ukrainian", LicenseID: "GPL-2.0-or-later OR LGPL-2.1-or-later OR MPL-1.1", LicenseFile: "README_uk_UA.txt"},
}

// DefaultCatalog returns the built-in catalog. The returned catalog is a copy
// and may be modified by the caller.
func DefaultCatalog() Catalog {
	return slices.Clone(defaultCatalog)
}

// LoadCatalog reads a YAML catalog from r. The document is a list of
// dictionaries:
//
//	- code: en
//	  folder: en
//	  name: English (United States)
//	  spdx: MIT AND BSD-3-Clause
//	  license: README_en_US.txt
//	  dic: en_US.dic
//	  aff: en_US.aff
//
// The catalog is validated before it is returned.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog", ErrCatalog)
		}
		return nil, fmt.Errorf("%w: decoding: %w", ErrCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every dictionary has the required fields, a valid
// language tag as its code, and a code unique within the catalog.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty catalog", ErrCatalog)
	}

	var errs []error
	seen := map[string]bool{}
	for i, d := range c {
		if d.Code == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d: missing code", ErrCatalog, i))
			continue
		}
		if _, err := language.Parse(d.Code); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: invalid language tag: %w", ErrCatalog, d.Code, err))
		}
		key := codeKey(d.Code)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%w: %s: duplicate code", ErrCatalog, d.Code))
		}
		seen[key] = true

		for _, f := range []struct {
			name  string
			value string
			opt   bool
		}{
			{"folder", d.SourceFolder, false},
			{"spdx", d.LicenseID, false},
			{"license", d.LicenseFile, false},
			{"dic", d.WordListFileOverride, true},
			{"aff", d.AffixFileOverride, true},
		} {
			if f.value == "" {
				if !f.opt {
					errs = append(errs, fmt.Errorf("%w: %s: missing %s", ErrCatalog, d.Code, f.name))
				}
				continue
			}
			if !validPath(f.value) {
				errs = append(errs, fmt.Errorf("%w: %s: invalid %s %q", ErrCatalog, d.Code, f.name, f.value))
			}
		}
	}

	return errors.Join(errs...)
}

// Filter returns the dictionaries with the given codes, in catalog order.
func (c Catalog) Filter(codes ...string) (Catalog, error) {
	want := map[string]bool{}
	for _, code := range codes {
		if !slices.ContainsFunc(c, func(d Descriptor) bool { return d.Code == code }) {
			return nil, fmt.Errorf("%w: unknown dictionary %q", ErrCatalog, code)
		}
		want[code] = true
	}

	var filtered Catalog
	for _, d := range c {
		if want[d.Code] {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// checkCode returns an error if code cannot be used as a dictionary
// directory name directly below the output root.
func checkCode(code string) error {
	if !validPath(code) || strings.Contains(code, "/") {
		return fmt.Errorf("%w: invalid code %q", ErrCatalog, code)
	}
	return nil
}

// codeKey returns the key identifying code's directory. Tags differing only
// in case share a directory on case-insensitive file systems.
func codeKey(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}

// validPath reports whether p is a relative slash separated path that stays
// within its parent.
func validPath(p string) bool {
	if strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return false
	}
	for _, elem := range strings.Split(p, "/") {
		if elem == "" || elem == "." || elem == ".." {
			return false
		}
	}
	return true
}
