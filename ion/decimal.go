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

// Decimal is an arbitrary-precision decimal value: Coeff *
// 10^Exp. This mirrors ion's own decimal model (an integer
// coefficient and a base-10 exponent) rather than a floating
// binary fraction, so that values round-trip exactly.
type Decimal struct {
	Coeff *big.Int
	Exp   int
}

// NewDecimal returns a Decimal equal to coeff * 10^exp.
func NewDecimal(coeff *big.Int, exp int) Decimal {
	return Decimal{Coeff: coeff, Exp: exp}
}

// appendIonText appends d's ion text image to dst. Ion decimal
// syntax always includes a 'd' exponent marker (even for an
// exponent of zero, to distinguish a decimal from a plain
// integer), e.g. "123d0", "-5d-2", "0d0".
func (d Decimal) appendIonText(dst []byte) []byte {
	coeff := d.Coeff
	if coeff == nil {
		coeff = new(big.Int)
	}
	dst = appendBigInt(dst, coeff)
	dst = append(dst, 'd')
	dst = appendIntDecimal(dst, d.Exp)
	return dst
}

// appendJSONText appends d's down-converted JSON image to dst.
// JSON numbers have no decimal-exponent marker distinct from a
// float's, so a non-negative exponent is rendered by shifting
// the coefficient's decimal point directly (never emitting an
// 'e'), and a negative exponent falls back to a fractional
// decimal literal; this keeps JSON decoders from ever
// misreading an ion decimal as a JSON float and losing
// precision silently.
func (d Decimal) appendJSONText(dst []byte) []byte {
	coeff := d.Coeff
	if coeff == nil {
		coeff = new(big.Int)
	}
	if d.Exp >= 0 {
		dst = appendBigInt(dst, coeff)
		for i := 0; i < d.Exp; i++ {
			dst = append(dst, '0')
		}
		return dst
	}
	neg := coeff.Sign() < 0
	digits := appendBigInt(nil, new(big.Int).Abs(coeff))
	shift := -d.Exp
	if neg {
		dst = append(dst, '-')
	}
	if len(digits) <= shift {
		dst = append(dst, '0', '.')
		for i := 0; i < shift-len(digits); i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
		return dst
	}
	split := len(digits) - shift
	dst = append(dst, digits[:split]...)
	dst = append(dst, '.')
	dst = append(dst, digits[split:]...)
	return dst
}

func appendIntDecimal(dst []byte, v int) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	neg := v < 0
	if neg {
		v = -v
		dst = append(dst, '-')
	}
	start := len(dst)
	for v > 0 {
		dst = append(dst, byte('0')+byte(v%10))
		v /= 10
	}
	reverse(dst[start:])
	return dst
}
