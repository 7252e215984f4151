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

package date

import "fmt"

// Precision selects how much of a Time an ion timestamp text
// image retains. Ion timestamps are allowed to carry less
// precision than a full instant -- a bare year, or a
// year-month, or a calendar date with no time component at
// all -- and each precision level has its own text grammar.
type Precision int

const (
	// Year renders just the calendar year: "2022T".
	Year Precision = iota
	// Month renders year and month: "2022-01T".
	Month
	// Day renders a full calendar date: "2022-01-02T".
	Day
	// Minute renders date, hour, and minute: "2022-01-02T03:04Z".
	Minute
	// Second adds seconds: "2022-01-02T03:04:05Z".
	Second
	// Nanosecond adds a fractional-second component whenever
	// the Time's nanosecond field is non-zero:
	// "2022-01-02T03:04:05.123456789Z".
	Nanosecond
)

// AppendIonText appends t's ion text timestamp image, truncated
// to prec, to dst.
//
// Every precision at Minute or finer carries a "Z" zone
// designator: Time has no offset component of its own, so
// there is no way to express anything other than UTC.
func (t Time) AppendIonText(dst []byte, prec Precision) []byte {
	dst = appendPadded(dst, t.Year(), 4)
	if prec == Year {
		return append(dst, 'T')
	}
	dst = append(dst, '-')
	dst = appendPadded(dst, t.Month(), 2)
	if prec == Month {
		return append(dst, 'T')
	}
	dst = append(dst, '-')
	dst = appendPadded(dst, t.Day(), 2)
	if prec == Day {
		return append(dst, 'T')
	}
	dst = append(dst, 'T')
	dst = appendPadded(dst, t.Hour(), 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Minute(), 2)
	if prec == Minute {
		return append(dst, 'Z')
	}
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Second(), 2)
	if prec == Second {
		return append(dst, 'Z')
	}
	if ns := t.Nanosecond(); ns != 0 {
		dst = append(dst, '.')
		dst = appendPadded(dst, ns, 9)
		for len(dst) > 0 && dst[len(dst)-1] == '0' {
			dst = dst[:len(dst)-1]
		}
	}
	return append(dst, 'Z')
}

func appendPadded(dst []byte, v, width int) []byte {
	return append(dst, []byte(fmt.Sprintf("%0*d", width, v))...)
}
