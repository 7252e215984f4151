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

// BeginList opens a list value. Every BeginList must be matched
// by a corresponding EndList before any enclosing container is
// closed or the stream is finished.
func (w *Writer) BeginList() error {
	return w.startContainer(ListType, '[')
}

// EndList closes the innermost open list.
func (w *Writer) EndList() error {
	return w.finishContainer(ListType, ']')
}

// BeginSexp opens an s-expression value. Under JSON
// down-conversion, which has no sexp syntax, a sexp is written
// exactly like a list.
func (w *Writer) BeginSexp() error {
	return w.startContainer(SexpType, w.sexpOpen())
}

// EndSexp closes the innermost open s-expression.
func (w *Writer) EndSexp() error {
	return w.finishContainer(SexpType, w.sexpClose())
}

func (w *Writer) sexpOpen() byte {
	if w.opts.downConvert() {
		return '['
	}
	return '('
}

func (w *Writer) sexpClose() byte {
	if w.opts.downConvert() {
		return ']'
	}
	return ')'
}

// BeginStruct opens a struct value. Field names for its direct
// children must be supplied with FieldName before each child
// value.
func (w *Writer) BeginStruct() error {
	if err := w.startContainer(StructType, '{'); err != nil {
		return err
	}
	w.inStruct = true
	return nil
}

// EndStruct closes the innermost open struct.
func (w *Writer) EndStruct() error {
	if w.hasField {
		return newError(KindInvalidState, "EndStruct", nil)
	}
	if err := w.finishContainer(StructType, '}'); err != nil {
		return err
	}
	w.inStruct = w.top().kind == StructType
	return nil
}

func (w *Writer) startContainer(kind Type, open byte) error {
	if err := w.startValue(); err != nil {
		return err
	}
	w.pushContainer(kind)
	w.inStruct = kind == StructType
	if err := w.writeByte(open); err != nil {
		return err
	}
	w.top().pendingSeparator = false
	if w.opts.flushEveryValue() {
		if f, ok := w.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return newError(KindWriteError, "startContainer", err)
			}
		}
	}
	return nil
}

func (w *Writer) finishContainer(kind Type, close byte) error {
	if len(w.stack) == 0 || w.top().kind != kind {
		return newError(KindInvalidState, "finishContainer", nil)
	}
	if w.opts.pretty() {
		if err := w.writeRaw("\n"); err != nil {
			return err
		}
		// indent for the closing bracket is one level shallower
		// than the contents were: print it relative to the
		// parent, which is what printIndent sees once we pop.
	}
	if _, err := w.popContainer(); err != nil {
		return err
	}
	w.inStruct = w.top().kind == StructType
	if w.opts.pretty() {
		if err := w.printIndent(); err != nil {
			return err
		}
	}
	if err := w.writeByte(close); err != nil {
		return err
	}
	return w.closeValue()
}
