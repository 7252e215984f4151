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

import "math/big"

// appendBigInt appends the base-10 text image of v to dst,
// the way ion-c's _write_ion_int does: by repeated division
// rather than relying on any particular big-integer library's
// own formatter, so the digit buffer stays under our control
// regardless of which big.Int implementation backs v.
//
// Unlike ion-c, which switches between a stack buffer and a
// heap allocation above a fixed digit-count threshold, we let
// append's own growth policy handle that; math/big is the one
// place in this package that falls back to the standard
// library, since no third-party arbitrary-precision integer
// library appears anywhere in the retrieved example corpus.
func appendBigInt(dst []byte, v *big.Int) []byte {
	if v.Sign() == 0 {
		return append(dst, '0')
	}
	neg := v.Sign() < 0
	digits := new(big.Int).Abs(v)

	start := len(dst)
	ten := big.NewInt(10)
	rem := new(big.Int)
	for digits.Sign() != 0 {
		digits.QuoRem(digits, ten, rem)
		dst = append(dst, byte('0')+byte(rem.Int64()))
	}
	if neg {
		dst = append(dst, '-')
	}
	reverse(dst[start:])
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
