// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ion

import (
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// DigestWriter wraps an io.Writer, running every byte written
// to it through a blake2b-256 digest as it passes through. A
// Writer built on top of a DigestWriter (see NewDigestWriter)
// produces a running content hash of the exact text it emitted,
// which is useful for deduplicating or fingerprinting
// serialized streams without a second read pass over the
// output.
type DigestWriter struct {
	out io.Writer
	h   hash.Hash
}

// NewDigestWriter wraps out so that everything written through
// it is also folded into a running blake2b-256 digest.
func NewDigestWriter(out io.Writer) *DigestWriter {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an oversized key, and we
		// always pass nil, so this is unreachable.
		panic(err)
	}
	return &DigestWriter{out: out, h: h}
}

func (d *DigestWriter) Write(p []byte) (int, error) {
	n, err := d.out.Write(p)
	if n > 0 {
		d.h.Write(p[:n])
	}
	return n, err
}

// Sum appends the current digest to b and returns the result,
// mirroring hash.Hash.Sum. It may be called at any point; doing
// so does not reset or otherwise disturb the running digest.
func (d *DigestWriter) Sum(b []byte) []byte {
	return d.h.Sum(b)
}
