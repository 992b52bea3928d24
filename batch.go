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

	"go.uber.org/zap"
)

// DictionaryAcquirer acquires a single dictionary. It is implemented by
// [*Acquirer].
type DictionaryAcquirer interface {
	Acquire(ctx context.Context, root string, d Descriptor) (*Result, error)
}

// Report holds the results of a batch run in catalog order.
type Report struct {
	Results []*Result
}

// Acquired returns the number of dictionaries that were downloaded.
func (r *Report) Acquired() int {
	return r.count(StatusAcquired)
}

// Skipped returns the number of dictionaries that were already present.
func (r *Report) Skipped() int {
	return r.count(StatusSkipped)
}

// Failed returns the number of dictionaries that could not be acquired.
func (r *Report) Failed() int {
	return r.count(StatusFailed)
}

func (r *Report) count(s Status) int {
	var n int
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// AcquireAll acquires every dictionary in c, one at a time and in order, into
// root. A failure or panic while acquiring one dictionary is recorded in the
// report and does not stop the others. An entry repeating an earlier code
// fails with [ErrCatalog] without being acquired. If ctx is canceled the
// remaining dictionaries are recorded as failed.
func AcquireAll(ctx context.Context, a DictionaryAcquirer, root string, c Catalog, log *zap.Logger) *Report {
	if log == nil {
		log = zap.NewNop()
	}

	report := &Report{}
	seen := map[string]bool{}
	for _, d := range c {
		var res *Result
		var err error
		if key := codeKey(d.Code); seen[key] {
			err = fmt.Errorf("%w: %s: duplicate code", ErrCatalog, d.Code)
		} else {
			seen[key] = true
			if err = ctx.Err(); err == nil {
				res, err = acquireOne(ctx, a, root, d)
			}
		}

		if res == nil {
			if err == nil {
				err = fmt.Errorf("%w: %s: no result", ErrUnexpected, d.Code)
			}
			res = &Result{Code: d.Code}
		}
		if err == nil && res.Status != StatusAcquired && res.Status != StatusSkipped {
			err = fmt.Errorf("%w: %s: no status", ErrUnexpected, d.Code)
		}
		if err != nil {
			if !errors.Is(err, ErrFetch) && !errors.Is(err, ErrUnexpected) && !errors.Is(err, ErrCatalog) {
				err = fmt.Errorf("%w: %s: %w", ErrUnexpected, d.Code, err)
			}
			res.Status = StatusFailed
			res.Err = err
			log.Error("dictionary failed", zap.String("code", d.Code), zap.Error(err))
		}
		report.Results = append(report.Results, res)
	}

	return report
}

// acquireOne acquires d, converting a panic into a [*PanicError].
func acquireOne(ctx context.Context, a DictionaryAcquirer, root string, d Descriptor) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &PanicError{Value: r}
		}
	}()
	return a.Acquire(ctx, root, d)
}
