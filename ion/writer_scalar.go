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
	"math"
	"math/big"
	"strconv"

	"github.com/SnellerInc/ion-text-writer/date"
)

// WriteNull writes an untyped null.
func (w *Writer) WriteNull() error {
	if err := w.startValue(); err != nil {
		return err
	}
	if err := w.writeRaw("null"); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteTypedNull writes a null of the given type, e.g.
// null.struct or null.timestamp. Down-converted JSON has no
// typed nulls, so every typed null collapses to the bare
// "null" in that mode.
func (w *Writer) WriteTypedNull(t Type) error {
	if err := w.startValue(); err != nil {
		return err
	}
	image := "null"
	if !w.opts.downConvert() {
		image = t.typedNull()
	}
	if err := w.writeRaw(image); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteBool writes a boolean value.
func (w *Writer) WriteBool(v bool) error {
	if err := w.startValue(); err != nil {
		return err
	}
	image := "false"
	if v {
		image = "true"
	}
	if err := w.writeRaw(image); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteInt writes a signed integer.
func (w *Writer) WriteInt(v int64) error {
	if err := w.startValue(); err != nil {
		return err
	}
	w.scratch = strconv.AppendInt(w.scratch[:0], v, 10)
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteUint writes an unsigned integer.
func (w *Writer) WriteUint(v uint64) error {
	if err := w.startValue(); err != nil {
		return err
	}
	w.scratch = strconv.AppendUint(w.scratch[:0], v, 10)
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteBigInt writes an arbitrary-precision integer.
func (w *Writer) WriteBigInt(v *big.Int) error {
	if v == nil {
		return w.WriteTypedNull(IntType)
	}
	if err := w.startValue(); err != nil {
		return err
	}
	w.scratch = appendBigInt(w.scratch[:0], v)
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteFloat64 writes a 64-bit float. NaN and the two infinities
// are written using ion's special float keywords ("nan", "+inf",
// "-inf"); under JSON down-conversion, which cannot represent
// any of those, they all collapse to "null".
func (w *Writer) WriteFloat64(v float64) error {
	if err := w.startValue(); err != nil {
		return err
	}
	downConvert := w.opts.downConvert()
	switch {
	case math.IsNaN(v):
		return w.finishSpecialFloat("nan", downConvert)
	case math.IsInf(v, 1):
		return w.finishSpecialFloat("+inf", downConvert)
	case math.IsInf(v, -1):
		return w.finishSpecialFloat("-inf", downConvert)
	case v == 0:
		if downConvert {
			return w.finishSpecialFloat("0", false)
		}
		if math.Signbit(v) {
			return w.finishSpecialFloat("-0e0", false)
		}
		return w.finishSpecialFloat("0e0", false)
	}
	if downConvert {
		w.scratch = strconv.AppendFloat(w.scratch[:0], v, 'g', 15, 64)
	} else {
		w.scratch = strconv.AppendFloat(w.scratch[:0], v, 'g', -1, 64)
		if !hasExponent(w.scratch) {
			w.scratch = append(w.scratch, 'e', '+', '0')
		}
	}
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

func (w *Writer) finishSpecialFloat(image string, downConvert bool) error {
	if downConvert {
		image = "null"
	}
	if err := w.writeRaw(image); err != nil {
		return err
	}
	return w.closeValue()
}

func hasExponent(b []byte) bool {
	for _, c := range b {
		if c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

// WriteFloat32 writes a 32-bit float by promoting it to
// float64, matching ion's single float type.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteFloat64(float64(v))
}

// WriteDecimal writes an arbitrary-precision decimal value.
func (w *Writer) WriteDecimal(d Decimal) error {
	if err := w.startValue(); err != nil {
		return err
	}
	if w.opts.downConvert() {
		w.scratch = d.appendJSONText(w.scratch[:0])
	} else {
		w.scratch = d.appendIonText(w.scratch[:0])
	}
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteTimestamp writes a timestamp truncated to prec.
func (w *Writer) WriteTimestamp(t date.Time, prec date.Precision) error {
	if err := w.startValue(); err != nil {
		return err
	}
	downConvert := w.opts.downConvert()
	quote := byte('\'')
	if downConvert {
		quote = '"'
	}
	w.scratch = w.scratch[:0]
	if downConvert {
		w.scratch = append(w.scratch, quote)
	}
	w.scratch = t.AppendIonText(w.scratch, prec)
	if downConvert {
		w.scratch = append(w.scratch, quote)
	}
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteSymbol writes a symbol value by its text. The symbol is
// quoted automatically if its text is not a valid bare
// identifier, or unconditionally if the writer is
// down-converting to JSON (where a symbol becomes an ordinary
// quoted string).
func (w *Writer) WriteSymbol(sym string) error {
	// Any $ion_<int>_<int> text has no textual effect when
	// written as an ordinary value at the top level with no
	// annotations: it is indistinguishable from (and would be
	// reinterpreted by a reader as) a version marker, so
	// ion-c's writer silently drops it in that position rather
	// than emit a symbol a reader would misread as a stream
	// reset. The check has to happen before startValue and
	// must return immediately on a match, leaving the writer's
	// state completely untouched -- startValue (and the
	// framing it performs: draining pending annotations,
	// flipping noOutput, running streamStart) must never run
	// for a dropped symbol.
	if len(w.stack) == 0 && len(w.annotations) == 0 && isVersionMarkerText(sym) {
		return nil
	}
	if err := w.startValue(); err != nil {
		return err
	}
	if err := w.writeSymbolText(sym); err != nil {
		return err
	}
	return w.closeValue()
}

// isVersionMarkerText reports whether sym matches the reserved
// IVM text pattern "$ion_<int>_<int>" (e.g. "$ion_1_0"), the
// full family ion-c's _ion_symbol_table_parse_version_marker
// recognizes, not just the literal "$ion_1_0".
func isVersionMarkerText(sym string) bool {
	const prefix = "$ion_"
	if len(sym) <= len(prefix) || sym[:len(prefix)] != prefix {
		return false
	}
	rest := sym[len(prefix):]
	major, rest, ok := cutDigits(rest)
	if !ok || len(rest) == 0 || rest[0] != '_' {
		return false
	}
	minor, rest, ok := cutDigits(rest[1:])
	return ok && len(minor) > 0 && len(rest) == 0 && len(major) > 0
}

// cutDigits splits the leading run of ASCII digits off s,
// returning that run, the remainder, and whether any digit was
// found.
func cutDigits(s string) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:], i > 0
}

// WriteString writes a string value.
func (w *Writer) WriteString(s string) error {
	if err := w.startValue(); err != nil {
		return err
	}
	var err error
	w.scratch, err = appendEscapedString(w.scratch[:0], s, '"', w.opts.escapeAllNonASCII(), w.opts.downConvert())
	if err != nil {
		return newError(KindInvalidUnicodeSequence, "WriteString", err)
	}
	if err := w.writeBytes(w.scratch); err != nil {
		return err
	}
	return w.closeValue()
}
