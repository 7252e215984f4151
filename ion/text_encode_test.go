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

import "testing"

func TestNeedsQuotes(t *testing.T) {
	cases := []struct {
		sym  string
		want bool
	}{
		{"", true},
		{"foo", false},
		{"foo_bar", false},
		{"$123", false},
		{"123abc", true},
		{"foo bar", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{"nan", true},
		{"FooBar", false},
	}
	for _, c := range cases {
		if got := needsQuotes(c.sym); got != c.want {
			t.Errorf("needsQuotes(%q) = %v, want %v", c.sym, got, c.want)
		}
	}
}

func TestAppendEscapedStringPlain(t *testing.T) {
	got, err := appendEscapedString(nil, "hello", '"', false, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"hello"` {
		t.Errorf("got %q", got)
	}
}

func TestAppendEscapedStringControlChars(t *testing.T) {
	got, err := appendEscapedString(nil, "a\tb\x01c", '"', false, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `"a\tb\x01c"`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEscapedStringDownConvertWidensToUnicodeEscape(t *testing.T) {
	// JSON has no \xNN form, so a control byte with no named
	// JSON escape widens to \u00NN instead.
	got, err := appendEscapedString(nil, "a\x01b", '"', false, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "\"a\\u0001b\""
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEscapedStringNonASCIIPassthrough(t *testing.T) {
	got, err := appendEscapedString(nil, "café", '"', false, false)
	if err != nil {
		t.Fatal(err)
	}
	want := "\"café\""
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEscapedStringEscapeAllNonASCII(t *testing.T) {
	got, err := appendEscapedString(nil, "café", '"', true, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `"caf\xe9"`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEscapedStringSupplementaryPlane(t *testing.T) {
	got, err := appendEscapedString(nil, "\U0001F600", '"', true, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `"\U0001f600"`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEscapedStringInvalidUTF8(t *testing.T) {
	_, err := appendEscapedString(nil, "\xff", '"', false, false)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestDecodeScalarRejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	_, _, err := decodeScalar("\xc0\x80")
	if err == nil {
		t.Fatal("expected error for overlong encoding")
	}
}

func TestDecodeScalarRejectsSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 would encode U+D800, a surrogate half.
	_, _, err := decodeScalar("\xed\xa0\x80")
	if err == nil {
		t.Fatal("expected error for surrogate half")
	}
}

func TestDecodeScalarAccepts(t *testing.T) {
	r, n, err := decodeScalar("éxyz")
	if err != nil {
		t.Fatal(err)
	}
	if r != 'é' || n != 2 {
		t.Errorf("got r=%v n=%d, want r=%v n=2", r, n, rune('é'))
	}
}
