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
	"os"

	"sigs.k8s.io/yaml"
)

// WriterOptions controls the six knobs ion-c's text writer
// recognizes. The zero value is the compact, ion-preserving
// default: no pretty printing, UTF-8 passthrough, and no JSON
// down-conversion.
type WriterOptions struct {
	// PrettyPrint indents nested containers and inserts
	// newlines between values, rather than writing the most
	// compact representation possible.
	PrettyPrint bool `json:"prettyPrint,omitempty"`

	// IndentWithTabs selects a single tab per nesting level
	// instead of IndentSize spaces. Only meaningful when
	// PrettyPrint is set.
	IndentWithTabs bool `json:"indentWithTabs,omitempty"`

	// IndentSize is the number of spaces per nesting level
	// when PrettyPrint is set and IndentWithTabs is not. A
	// zero value defaults to 2.
	IndentSize int `json:"indentSize,omitempty"`

	// EscapeAllNonASCII forces every non-ASCII scalar value in
	// a string or symbol to be numerically escaped, even when
	// it would otherwise be valid to pass the UTF-8 bytes
	// through unescaped.
	EscapeAllNonASCII bool `json:"escapeAllNonAscii,omitempty"`

	// JSONDowncovert switches the writer into the RFC 8259
	// compatible subset: symbols are always double-quoted,
	// typed nulls collapse to bare `null`, annotations are
	// dropped, and the escape table narrows to what JSON
	// strings support.
	JSONDowncovert bool `json:"jsonDownconvert,omitempty"`

	// FlushEveryValue calls Flush on the underlying sink (when
	// it has a Flush method) after every value is completed, at
	// any nesting depth, and after every container is opened,
	// trading throughput for lower end-to-end latency on
	// interactive streams.
	FlushEveryValue bool `json:"flushEveryValue,omitempty"`
}

func (o *WriterOptions) indentSize() int {
	if o == nil || o.IndentSize <= 0 {
		return 2
	}
	return o.IndentSize
}

func (o *WriterOptions) pretty() bool          { return o != nil && o.PrettyPrint }
func (o *WriterOptions) tabs() bool            { return o != nil && o.IndentWithTabs }
func (o *WriterOptions) escapeAllNonASCII() bool { return o != nil && o.EscapeAllNonASCII }
func (o *WriterOptions) downConvert() bool     { return o != nil && o.JSONDowncovert }
func (o *WriterOptions) flushEveryValue() bool { return o != nil && o.FlushEveryValue }

// LoadWriterOptions reads a WriterOptions from a YAML (or
// plain JSON, which is a YAML subset) configuration file. This
// lets a deployment describe its preferred writer behavior --
// for instance always down-converting to JSON for a downstream
// consumer that has no ion support -- without a code change.
func LoadWriterOptions(path string) (*WriterOptions, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindBadHandle, "LoadWriterOptions", err)
	}
	var opts WriterOptions
	if err := yaml.Unmarshal(buf, &opts); err != nil {
		return nil, newError(KindInvalidArgument, "LoadWriterOptions", err)
	}
	return &opts, nil
}
