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
	"bytes"

	"golang.org/x/text/transform"
)

// bom is the UTF-8 encoding of U+FEFF.
var bom = []byte{0xEF, 0xBB, 0xBF}

// LineFolder canonicalizes line structure. It removes leading byte order
// marks, converts CRLF and bare CR line endings to LF, removes trailing
// spaces and tabs from every line, and ends the output with exactly one LF.
//
// All bytes it inspects are ASCII so the input is processed byte-wise;
// multi-byte UTF-8 sequences and invalid bytes are passed through untouched.
type LineFolder struct {
	// started is true after the leading byte order marks have been consumed.
	started bool

	// cr is true if the last byte consumed was a carriage return.
	cr bool

	// newlines is the number of line breaks not yet emitted.
	newlines int

	// space holds horizontal whitespace not yet emitted.
	space []byte

	// done is true after the final line break has been emitted.
	done bool
}

// Transform implements [transform.Transformer.Transform].
func (f *LineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		f.done = false
		if !f.started {
			rest := src[nSrc:]
			if bytes.HasPrefix(rest, bom) {
				nSrc += len(bom)
				continue
			}
			if !atEOF && len(rest) < len(bom) && bytes.HasPrefix(bom, rest) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			f.started = true
		}

		c := src[nSrc]
		switch c {
		case '\n':
			if !f.cr {
				f.space = f.space[:0]
				f.newlines++
			}
			f.cr = false
		case '\r':
			f.space = f.space[:0]
			f.newlines++
			f.cr = true
		case ' ', '\t':
			// Held back until we know whether the line has more content.
			f.space = append(f.space, c)
			f.cr = false
		default:
			// Content confirms the held bytes so they may be flushed in
			// parts; c is consumed only once all of them are out.
			for ; f.newlines > 0 && nDst < len(dst); f.newlines-- {
				dst[nDst] = '\n'
				nDst++
			}
			if f.newlines == 0 && len(f.space) > 0 {
				n := copy(dst[nDst:], f.space)
				nDst += n
				f.space = f.space[:copy(f.space, f.space[n:])]
			}
			if f.newlines > 0 || len(f.space) > 0 || nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			f.cr = false
		}
		nSrc++
	}

	if atEOF && !f.done {
		if nDst+1 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		// Pending line breaks and whitespace collapse into a single LF.
		dst[nDst] = '\n'
		nDst++
		f.newlines = 0
		f.space = f.space[:0]
		f.cr = false
		f.done = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *LineFolder) Reset() {
	*f = LineFolder{space: f.space[:0]}
}
