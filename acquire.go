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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/k3a/html2text"
	"go.uber.org/zap"

	"github.com/ianlewis/go-dictfetch/aff"
	"github.com/ianlewis/go-dictfetch/internal/fetch"
	"github.com/ianlewis/go-dictfetch/normalize"
)

// Local artifact file names.
const (
	// WordListFileName is the normalized word list. Its presence marks the
	// dictionary as already downloaded.
	WordListFileName = "index.dic"

	// AffixFileName is the normalized affix file, declared as UTF-8.
	AffixFileName = "index.aff"

	// LicenseIDFileName holds the SPDX license expression.
	LicenseIDFileName = ".spdx"

	// SourceFileName holds the upstream repository URL.
	SourceFileName = ".source"

	// LicenseFileName holds the upstream license text, if it was found.
	LicenseFileName = "license"
)

// Status is the outcome of acquiring a dictionary.
type Status int

const (
	// StatusUnknown is the zero Status. It is never reported for a
	// processed dictionary.
	StatusUnknown Status = iota

	// StatusAcquired means the dictionary was downloaded and written.
	StatusAcquired

	// StatusSkipped means the dictionary was already present.
	StatusSkipped

	// StatusFailed means the dictionary could not be acquired.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusAcquired:
		return "acquired"
	case StatusSkipped:
		return "already present"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of acquiring one dictionary.
type Result struct {
	// Code is the dictionary code.
	Code string

	// Status is the outcome.
	Status Status

	// License is true if the upstream license text was written.
	License bool

	// Err is the error for a failed dictionary.
	Err error
}

// Options are options for an [Acquirer].
type Options struct {
	// BaseURL is the location of the upstream repository's raw files.
	// Defaults to [BaseURL].
	BaseURL string

	// SourceURL is written to each dictionary's .source file. Defaults to
	// [SourceURL].
	SourceURL string

	// HTTPClient is the client used for downloads. Defaults to
	// [http.DefaultClient].
	HTTPClient *http.Client

	// Logger receives progress messages. Defaults to a no-op logger.
	Logger *zap.Logger
}

// GetBaseURL returns the base URL.
func (o *Options) GetBaseURL() string {
	if o != nil && o.BaseURL != "" {
		return o.BaseURL
	}
	return BaseURL
}

// GetSourceURL returns the source URL.
func (o *Options) GetSourceURL() string {
	if o != nil && o.SourceURL != "" {
		return o.SourceURL
	}
	return SourceURL
}

// GetHTTPClient returns the HTTP client.
func (o *Options) GetHTTPClient() *http.Client {
	if o != nil && o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}

// GetLogger returns the logger.
func (o *Options) GetLogger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Acquirer downloads dictionaries into a local directory tree.
type Acquirer struct {
	baseURL   string
	sourceURL string
	client    *fetch.Client
	log       *zap.Logger
}

// NewAcquirer returns a new Acquirer. opts may be nil.
func NewAcquirer(opts *Options) *Acquirer {
	return &Acquirer{
		baseURL:   opts.GetBaseURL(),
		sourceURL: opts.GetSourceURL(),
		client:    fetch.New(opts.GetHTTPClient()),
		log:       opts.GetLogger(),
	}
}

// Acquire downloads the dictionary d into the directory root/d.Code.
//
// If the word list already exists locally the dictionary is skipped without
// any network access. Otherwise the word list and affix file are downloaded
// and written, followed by the license and source stamps and, if it can be
// downloaded, the license text. A missing word list or affix file fails the
// dictionary with a [*FetchError]; a missing license text does not. A code
// that is not a valid directory name fails with [ErrCatalog].
//
// The returned Result is never nil. The error is non-nil only for failed
// dictionaries and is also recorded in the Result.
func (a *Acquirer) Acquire(ctx context.Context, root string, d Descriptor) (*Result, error) {
	log := a.log.With(zap.String("code", d.Code))
	res := &Result{Code: d.Code}
	fail := func(err error) (*Result, error) {
		res.Status = StatusFailed
		res.Err = err
		return res, err
	}

	if err := checkCode(d.Code); err != nil {
		return fail(err)
	}

	dir := filepath.Join(root, d.Code)
	_, err := os.Stat(filepath.Join(dir, WordListFileName))
	if err == nil {
		log.Info("already present, skipping", zap.String("dir", dir))
		res.Status = StatusSkipped
		return res, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fail(fmt.Errorf("%w: %s: %w", ErrUnexpected, d.Code, err))
	}

	log.Info("fetching dictionary", zap.String("name", d.DisplayName))

	// Both required files are downloaded before anything is written so that
	// a dictionary directory never holds a word list without affix rules.
	dic, err := a.fetchRequired(ctx, log, d, "word list", d.WordListURL)
	if err != nil {
		return fail(err)
	}
	affix, err := a.fetchRequired(ctx, log, d, "affix rules", d.AffixURL)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrUnexpected, d.Code, err))
	}

	affText := normalize.Normalize(string(affix))
	if enc := aff.Encoding(affText); enc != aff.UTF8 {
		log.Info("forcing affix encoding", zap.String("declared", enc), zap.String("forced", aff.UTF8))
	}
	affText = aff.ForceUTF8(affText)

	for _, f := range []struct {
		name    string
		content string
	}{
		{WordListFileName, normalize.Normalize(string(dic))},
		{AffixFileName, affText},
		{LicenseIDFileName, d.LicenseID + "\n"},
		{SourceFileName, a.sourceURL + "\n"},
	} {
		if err := writeFile(dir, f.name, f.content); err != nil {
			return fail(fmt.Errorf("%w: %s: %w", ErrUnexpected, d.Code, err))
		}
		log.Debug("wrote artifact", zap.String("file", f.name), zap.Int("bytes", len(f.content)))
	}

	license, ok := a.fetchLicense(ctx, log, d)
	if ok {
		if err := writeFile(dir, LicenseFileName, license); err != nil {
			return fail(fmt.Errorf("%w: %s: %w", ErrUnexpected, d.Code, err))
		}
		log.Debug("wrote artifact", zap.String("file", LicenseFileName), zap.Int("bytes", len(license)))
		res.License = true
	}

	log.Info("dictionary acquired", zap.Bool("license", res.License))
	res.Status = StatusAcquired
	return res, nil
}

// fetchRequired downloads a required artifact.
func (a *Acquirer) fetchRequired(
	ctx context.Context,
	log *zap.Logger,
	d Descriptor,
	artifact string,
	location func(string) (string, error),
) ([]byte, error) {
	u, err := location(a.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", ErrUnexpected, d.Code, artifact, err)
	}

	log.Info("downloading", zap.String("artifact", artifact), zap.String("url", u))
	b, err := a.client.Get(ctx, u)
	if err != nil {
		return nil, &FetchError{
			Code:     d.Code,
			Artifact: artifact,
			URL:      u,
			Err:      err,
		}
	}
	return b, nil
}

// fetchLicense downloads and normalizes the license text. It returns false
// if the license could not be downloaded.
func (a *Acquirer) fetchLicense(ctx context.Context, log *zap.Logger, d Descriptor) (string, bool) {
	u, err := d.LicenseURL(a.baseURL)
	if err != nil {
		log.Info("license not found", zap.Error(err))
		return "", false
	}

	log.Info("downloading", zap.String("artifact", "license"), zap.String("url", u))
	b, err := a.client.Get(ctx, u)
	if err != nil {
		log.Info("license not found", zap.String("url", u), zap.Error(err))
		return "", false
	}

	text := string(b)
	switch strings.ToLower(path.Ext(d.LicenseFile)) {
	case ".html", ".htm":
		text = html2text.HTML2Text(text)
	}
	return normalize.Normalize(text), true
}

// writeFile writes content to dir/name via a temporary file so that a
// partially written file is never left under its final name.
func writeFile(dir, name, content string) error {
	f, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(dir, name))
}
