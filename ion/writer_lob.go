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

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// BeginBlob opens a blob value. Contents are supplied in one
// or more calls to AppendBlob and terminated with EndBlob; the
// three calls may be replaced with a single WriteBlob when the
// whole value is already in memory.
//
// Blob bytes are base64 encoded as they are written, three
// input bytes at a time. Callers are not required to supply
// data in multiples of three: a partial triple is carried
// across AppendBlob calls and only flushed once three bytes
// have accumulated, or at EndBlob if the total length was not
// a multiple of three.
func (w *Writer) BeginBlob() error {
	if err := w.startValue(); err != nil {
		return err
	}
	open := "{{"
	if w.opts.downConvert() {
		open = "\""
	}
	if err := w.writeRaw(open); err != nil {
		return err
	}
	w.activeLob = BlobType
	return nil
}

// AppendBlob appends more raw bytes to the blob opened by the
// most recent BeginBlob.
func (w *Writer) AppendBlob(data []byte) error {
	if w.activeLob != BlobType {
		return newError(KindInvalidState, "AppendBlob", nil)
	}
	if w.blobBytesPending > 0 {
		for w.blobBytesPending < 3 && len(data) > 0 {
			w.pendingBlob = w.pendingBlob<<8 | uint32(data[0])
			data = data[1:]
			w.blobBytesPending++
		}
		if w.blobBytesPending < 3 {
			return nil
		}
		w.scratch = appendBase64Triple(w.scratch[:0], w.pendingBlob, 3)
		if err := w.writeBytes(w.scratch); err != nil {
			return err
		}
		w.pendingBlob, w.blobBytesPending = 0, 0
	}
	for len(data) > 2 {
		triple := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
		w.scratch = appendBase64Triple(w.scratch[:0], triple, 3)
		if err := w.writeBytes(w.scratch); err != nil {
			return err
		}
		data = data[3:]
	}
	w.blobBytesPending = len(data)
	switch len(data) {
	case 1:
		w.pendingBlob = uint32(data[0])
	case 2:
		w.pendingBlob = uint32(data[0])<<8 | uint32(data[1])
	default:
		w.pendingBlob = 0
	}
	return nil
}

// EndBlob flushes any carried partial triple (padding the
// base64 image with "=" as needed) and closes the blob.
func (w *Writer) EndBlob() error {
	if w.activeLob != BlobType {
		return newError(KindInvalidState, "EndBlob", nil)
	}
	if w.blobBytesPending > 0 {
		triple := w.pendingBlob << uint(8*(3-w.blobBytesPending))
		w.scratch = appendBase64Triple(w.scratch[:0], triple, w.blobBytesPending)
		if err := w.writeBytes(w.scratch); err != nil {
			return err
		}
		w.pendingBlob, w.blobBytesPending = 0, 0
	}
	w.activeLob = InvalidType
	close := "}}"
	if w.opts.downConvert() {
		close = "\""
	}
	if err := w.writeRaw(close); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteBlob writes an entire blob value from data already held
// in memory.
func (w *Writer) WriteBlob(data []byte) error {
	if err := w.BeginBlob(); err != nil {
		return err
	}
	if err := w.AppendBlob(data); err != nil {
		return err
	}
	return w.EndBlob()
}

// appendBase64Triple appends the 4-character base64 image of
// the n significant bytes carried in the high bits of triple
// (n == 3: all 24 bits; n == 1 or 2: the corresponding bytes
// left-justified, as produced by EndBlob's left shift), padding
// with "=" for the bytes that are not present.
func appendBase64Triple(dst []byte, triple uint32, n int) []byte {
	c0 := byte(triple>>18) & 0x3f
	c1 := byte(triple>>12) & 0x3f
	c2 := byte(triple>>6) & 0x3f
	c3 := byte(triple) & 0x3f
	dst = append(dst, base64Alphabet[c0], base64Alphabet[c1])
	if n >= 2 {
		dst = append(dst, base64Alphabet[c2])
	} else {
		dst = append(dst, '=')
	}
	if n >= 3 {
		dst = append(dst, base64Alphabet[c3])
	} else {
		dst = append(dst, '=')
	}
	return dst
}

// BeginClob opens a clob value. Unlike a blob, a clob's
// contents are text-shaped (escaped the same way a quoted
// string's bytes are) rather than base64 encoded, but the
// bytes are taken as-is rather than decoded as UTF-8: a clob
// may legally hold octets that are not valid UTF-8 text.
func (w *Writer) BeginClob() error {
	if err := w.startValue(); err != nil {
		return err
	}
	open := "{{\""
	if w.opts.downConvert() {
		open = "\""
	}
	if err := w.writeRaw(open); err != nil {
		return err
	}
	w.activeLob = ClobType
	return nil
}

// AppendClob appends more raw bytes to the clob opened by the
// most recent BeginClob, escaping the same control characters,
// quote, and backslash that a quoted string escapes.
func (w *Writer) AppendClob(data []byte) error {
	if w.activeLob != ClobType {
		return newError(KindInvalidState, "AppendClob", nil)
	}
	downConvert := w.opts.downConvert()
	table := controlEscapesIon
	if downConvert {
		table = controlEscapesJSON
	}
	w.scratch = w.scratch[:0]
	for _, c := range data {
		if c == '"' || needsControlEscape(c, downConvert) {
			if esc, ok := table[c]; ok {
				w.scratch = append(w.scratch, esc...)
				continue
			}
			w.scratch = appendControlHexEscape(w.scratch, c, downConvert)
			continue
		}
		w.scratch = append(w.scratch, c)
	}
	return w.writeBytes(w.scratch)
}

// EndClob closes the clob opened by the most recent BeginClob.
func (w *Writer) EndClob() error {
	if w.activeLob != ClobType {
		return newError(KindInvalidState, "EndClob", nil)
	}
	w.activeLob = InvalidType
	close := "\"}}"
	if w.opts.downConvert() {
		close = "\""
	}
	if err := w.writeRaw(close); err != nil {
		return err
	}
	return w.closeValue()
}

// WriteClob writes an entire clob value from data already held
// in memory.
func (w *Writer) WriteClob(data []byte) error {
	if err := w.BeginClob(); err != nil {
		return err
	}
	if err := w.AppendClob(data); err != nil {
		return err
	}
	return w.EndClob()
}
