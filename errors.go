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

	"github.com/ianlewis/go-dictfetch/internal/fetch"
)

// ErrDictfetch is a parent error for all errors returned by this package.
var ErrDictfetch = errors.New("dictfetch")

// ErrCatalog indicates an invalid catalog.
var ErrCatalog = fmt.Errorf("%w: catalog", ErrDictfetch)

// ErrFetch indicates that a required artifact could not be downloaded.
var ErrFetch = fmt.Errorf("%w: fetch failed", ErrDictfetch)

// ErrUnexpected indicates a failure other than a failed download while
// processing a dictionary, such as a filesystem error or a panic.
var ErrUnexpected = fmt.Errorf("%w: unexpected failure", ErrDictfetch)

// ErrNotFound indicates that the server responded with a non-success status.
var ErrNotFound = fetch.ErrNotFound

// ErrNetwork indicates a transport level failure.
var ErrNetwork = fetch.ErrNetwork

// FetchError is returned when a required artifact could not be downloaded.
// It matches [ErrFetch] and the underlying cause, either [ErrNotFound] or
// [ErrNetwork].
type FetchError struct {
	// Code is the dictionary code.
	Code string

	// Artifact is a human readable artifact name, e.g. "word list".
	Artifact string

	// URL is the remote location.
	URL string

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%v: %s: %s %s: %v", ErrFetch, e.Code, e.Artifact, e.URL, e.Err)
}

// Unwrap returns [ErrFetch] and the underlying error.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}

// PanicError wraps a value recovered from a panic while processing a
// dictionary. It matches [ErrUnexpected].
type PanicError struct {
	Value any
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: panic: %v", ErrUnexpected, e.Value)
}

// Unwrap returns [ErrUnexpected].
func (e *PanicError) Unwrap() error {
	return ErrUnexpected
}
