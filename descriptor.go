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
	"net/url"
)

const (
	// WordListExt is the extension of upstream word list files.
	WordListExt = ".dic"

	// AffixExt is the extension of upstream affix files.
	AffixExt = ".aff"
)

// Descriptor describes where a dictionary lives upstream and how it is
// licensed.
type Descriptor struct {
	// Code is the language tag. It is used as the local directory name and
	// must be unique within a catalog.
	Code string `yaml:"code"`

	// SourceFolder is the folder holding the dictionary in the upstream
	// repository.
	SourceFolder string `yaml:"folder"`

	// DisplayName is the human readable language name.
	DisplayName string `yaml:"name"`

	// LicenseID is the SPDX license expression for the dictionary.
	LicenseID string `yaml:"spdx"`

	// LicenseFile is the name of the upstream license file, relative to
	// SourceFolder.
	LicenseFile string `yaml:"license"`

	// WordListFileOverride is the upstream word list file name, used when it
	// is not SourceFolder + ".dic".
	WordListFileOverride string `yaml:"dic,omitempty"`

	// AffixFileOverride is the upstream affix file name, used when it is not
	// SourceFolder + ".aff".
	AffixFileOverride string `yaml:"aff,omitempty"`
}

// WordListFile returns the name of the upstream word list file.
func (d Descriptor) WordListFile() string {
	if d.WordListFileOverride != "" {
		return d.WordListFileOverride
	}
	return d.SourceFolder + WordListExt
}

// AffixFile returns the name of the upstream affix file.
func (d Descriptor) AffixFile() string {
	if d.AffixFileOverride != "" {
		return d.AffixFileOverride
	}
	return d.SourceFolder + AffixExt
}

// WordListURL returns the location of the word list under baseURL.
func (d Descriptor) WordListURL(baseURL string) (string, error) {
	return url.JoinPath(baseURL, d.SourceFolder, d.WordListFile())
}

// AffixURL returns the location of the affix file under baseURL.
func (d Descriptor) AffixURL(baseURL string) (string, error) {
	return url.JoinPath(baseURL, d.SourceFolder, d.AffixFile())
}

// LicenseURL returns the location of the license file under baseURL.
func (d Descriptor) LicenseURL(baseURL string) (string, error) {
	return url.JoinPath(baseURL, d.SourceFolder, d.LicenseFile)
}
