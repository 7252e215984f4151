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
	"bytes"
	"testing"
)

func TestListCompact(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginList(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(-2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndList(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[1,-2]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStructQuotedField(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.FieldName("a b"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBool(true); err != nil {
		t.Fatal(err)
	}
	if err := w.EndStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{'a b':true}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStructQuotedFieldJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, &WriterOptions{JSONDowncovert: true})
	if err := w.BeginStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.FieldName("a b"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBool(true); err != nil {
		t.Fatal(err)
	}
	if err := w.EndStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"a b":true}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStructPretty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, &WriterOptions{PrettyPrint: true, IndentSize: 2})
	if err := w.BeginStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.FieldName("a"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(1); err != nil {
		t.Fatal(err)
	}
	if err := w.FieldName("b"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := "{\n  a: 1,\n  b: 2\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSexpUsesSpaceSeparator(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginSexp(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndSexp(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "(1 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSexpDownConvertUsesBrackets(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, &WriterOptions{JSONDowncovert: true})
	if err := w.BeginSexp(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndSexp(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[1,2]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNestedContainers(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginList(); err != nil {
		t.Fatal(err)
	}
	if err := w.BeginList(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(1); err != nil {
		t.Fatal(err)
	}
	if err := w.EndList(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt(2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndList(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[[1],2]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEndStructWithPendingFieldNameFails(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginStruct(); err != nil {
		t.Fatal(err)
	}
	if err := w.FieldName("a"); err != nil {
		t.Fatal(err)
	}
	if err := w.EndStruct(); err == nil {
		t.Fatal("expected error closing struct with a pending field name")
	}
}

func TestMismatchedContainerCloseFails(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginList(); err != nil {
		t.Fatal(err)
	}
	if err := w.EndStruct(); err == nil {
		t.Fatal("expected error closing a list as a struct")
	}
}

func TestEmptyContainer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.BeginList(); err != nil {
		t.Fatal(err)
	}
	if err := w.EndList(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
