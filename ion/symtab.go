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
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Symbol represents an ion symbol ID.
type Symbol uint

// Import describes a shared symbol table imported into a
// Symtab. The writer never resolves imported symbols itself;
// it only needs to know that they exist so that it can emit
// a local symbol table declaration naming them before the
// first value of the stream.
type Import struct {
	Name    string
	Version int
	MaxID   int
}

// Symtab is an ion symbol table.
//
// Symtab maps symbol text to and from symbol IDs and tracks
// the set of shared imports that a writer using this table
// must declare. It has no notion of any particular wire
// encoding; a writer that needs to emit a symbol-table
// preamble calls Unload, which drives the writer through its
// own public container and value calls.
type Symtab struct {
	interned []string // symbol -> string lookup
	aliased  int      // read-only len of interned
	toindex  map[string]int
	memsize  int
	imports  []Import
}

func (s *Symtab) init() {
	s.toindex = maps.Clone(system2id)
}

// Reset resets a symbol table so that it no longer contains
// any symbols or imports except for the ion pre-defined
// symbols.
func (s *Symtab) Reset() {
	s.clear()
	s.imports = s.imports[:0]
}

// Get gets the string associated with the given interned
// symbol, or returns the empty string when there is no
// symbol with the given association.
func (s *Symtab) Get(x Symbol) string {
	lbl, _ := s.Lookup(x)
	return lbl
}

// Lookup gets the string associated with the given interned
// symbol. This returns ("", false) when the symbol is not
// present in the table.
func (s *Symtab) Lookup(x Symbol) (string, bool) {
	if int(x) < len(systemsyms) {
		return systemsyms[x], true
	}
	id := int(x) - len(systemsyms)
	if id < len(s.interned) {
		return s.interned[id], true
	}
	return "", false
}

// FindBySID resolves a symbol ID to its text, falling back
// to a "$N" placeholder if the ID has not (yet) been
// interned in s.
func (s *Symtab) FindBySID(sid Symbol) string {
	if text, ok := s.Lookup(sid); ok {
		return text
	}
	return fmt.Sprintf("$%d", sid)
}

// MaxID returns the total number of interned symbols. Note
// that ion defines ten symbols that are automatically
// interned, so an "empty" symbol table has MaxID() of 10.
func (s *Symtab) MaxID() int {
	return len(systemsyms) + len(s.interned)
}

// InternBytes is identical to Intern, except that it accepts
// a []byte instead of a string as an argument.
func (s *Symtab) InternBytes(buf []byte) Symbol {
	if s.toindex == nil {
		s.init()
	}
	i, ok := s.toindex[string(buf)]
	if ok {
		return Symbol(i)
	}
	id := len(s.interned) + len(systemsyms)
	s.toindex[string(buf)] = id
	s.append(string(buf))
	s.memsize += len(buf)
	return Symbol(id)
}

// Intern interns the given string if it is not already
// interned and returns the associated Symbol.
func (s *Symtab) Intern(x string) Symbol {
	if s.toindex == nil {
		s.init()
	}
	i, ok := s.toindex[x]
	if ok {
		return Symbol(i)
	}
	id := len(s.interned) + len(systemsyms)
	s.toindex[x] = id
	s.append(x)
	s.memsize += len(x)
	return Symbol(id)
}

// Symbolize returns the symbol associated with the string x
// in the symbol table, or (0, false) if the string has not
// been interned.
func (s *Symtab) Symbolize(x string) (Symbol, bool) {
	if s.toindex == nil {
		i, ok := system2id[x]
		return Symbol(i), ok
	}
	i, ok := s.toindex[x]
	return Symbol(i), ok
}

// SymbolizeBytes works identically to Symbolize, except that
// it accepts a []byte.
func (s *Symtab) SymbolizeBytes(x []byte) (Symbol, bool) {
	if s.toindex == nil {
		i, ok := system2id[string(x)]
		return Symbol(i), ok
	}
	i, ok := s.toindex[string(x)]
	return Symbol(i), ok
}

// AddImport records a shared symbol table import. Imports
// are declared, not resolved: the writer only needs to know
// that one exists in order to emit a reference to it in the
// local symbol table preamble.
func (s *Symtab) AddImport(imp Import) {
	s.imports = append(s.imports, imp)
}

// Imports returns the shared imports currently registered on
// the table, in declaration order.
func (s *Symtab) Imports() []Import {
	return s.imports
}

// ImportsEmpty reports whether the table has no shared
// imports left to declare.
func (s *Symtab) ImportsEmpty() bool {
	return len(s.imports) == 0
}

// Equal checks if two symtabs are equal.
func (s *Symtab) Equal(o *Symtab) bool {
	return reflect.DeepEqual(s, o)
}

// CloneInto performs a deep copy of s into o. CloneInto
// takes care to use some of the existing storage in o in
// order to reduce the copying overhead.
func (s *Symtab) CloneInto(o *Symtab) {
	i := 0
	for i < len(o.interned) && i < len(s.interned) && s.interned[i] == o.interned[i] {
		i++
	}
	if o.toindex == nil {
		o.init()
	}
	for ; i < len(o.interned); i++ {
		str := o.interned[i]
		if old, ok := o.toindex[str]; ok && old == i+len(systemsyms) {
			delete(o.toindex, str)
		}
		if i < len(s.interned) {
			o.set(i, s.interned[i])
			o.toindex[o.interned[i]] = i + len(systemsyms)
		}
	}
	for len(o.interned) < len(s.interned) {
		x := s.interned[len(o.interned)]
		o.toindex[x] = len(o.interned) + len(systemsyms)
		o.append(x)
	}
	o.interned = o.interned[:len(s.interned)]
	o.imports = append(o.imports[:0], s.imports...)
}

func (s *Symtab) append(v string) {
	if i := len(s.interned); i < cap(s.interned) {
		s.interned = s.interned[:i+1]
		s.set(i, v)
	} else {
		s.interned = append(s.interned, v)
		s.aliased = 0
	}
}

func (s *Symtab) set(i int, v string) {
	if s.interned[i] != v {
		if i < s.aliased {
			s.interned = slices.Clone(s.interned)
			s.aliased = 0
		}
		s.interned[i] = v
	}
}

// these symbols are predefined
var systemsyms = []string{
	"$0",
	"$ion",
	"$ion_1_0",
	"$ion_symbol_table",
	"name",
	"version",
	"imports",
	"symbols",
	"max_id",
	"$ion_shared_symbol_table",
}

const (
	symbolName                 = 4
	symbolVersion              = 5
	symbolImports              = 6
	symbolSymbols              = 7
	symbolMaxID                = 8
	dollarIonSymbolTable       = 3
	dollarIonSharedSymbolTable = 9
)

var system2id map[string]int

func init() {
	system2id = make(map[string]int, len(systemsyms))
	for i := range systemsyms {
		system2id[systemsyms[i]] = i
	}
}

// MinimumID returns the lowest ID that a string could be
// symbolized as.
//
// System symbols have IDs less than 10; all other symbols
// have an ID of at least 10.
func MinimumID(str string) int {
	i, ok := system2id[str]
	if !ok {
		return len(systemsyms)
	}
	return i
}

func (s *Symtab) clear() {
	s.interned = s.interned[:0]
	s.memsize = 0
	if s.toindex != nil {
		maps.Clear(s.toindex)
		maps.Copy(s.toindex, system2id)
	}
}

// Contains returns true if s is a superset of the symbols
// within inner, and all of the symbols in inner have the
// same symbol ID in s.
//
// If x.Contains(y), then x is a semantically equivalent
// substitute for y.
func (s *Symtab) Contains(inner *Symtab) bool {
	return s.contains(inner.interned)
}

func (s *Symtab) contains(in []string) bool {
	return stcontains(s.interned, in)
}

// stcontains returns whether s is a superset of in.
func stcontains(s, in []string) bool {
	return len(in) == 0 || len(in) <= len(s) &&
		(&in[0] == &s[0] || slices.Equal(s[:len(in)], in))
}

// alias returns a reference to the current symbol table and
// marks the symbol table as aliased so it is not overwritten
// when resetting or cloning.
func (s *Symtab) alias() []string {
	n := len(s.interned)
	if n > s.aliased {
		s.aliased = n
	}
	return s.interned[:n:n]
}

// Unload serializes a minimal local symbol table declaring
// s's shared imports by driving w through its own ordinary
// container and value calls, exactly as any other producer
// of ion text would. Keeping this logic here (rather than
// inside the writer itself) means the writer never needs to
// know anything about symbol table framing beyond what any
// other annotated struct value requires.
//
// Unload writes nothing if s has no imports to declare.
func (s *Symtab) Unload(w *Writer) error {
	if s.ImportsEmpty() {
		return nil
	}
	if err := w.Annotation(systemsyms[dollarIonSymbolTable]); err != nil {
		return err
	}
	if err := w.BeginStruct(); err != nil {
		return err
	}
	if err := w.FieldName(systemsyms[symbolImports]); err != nil {
		return err
	}
	if err := w.BeginList(); err != nil {
		return err
	}
	for _, imp := range s.imports {
		if err := w.BeginStruct(); err != nil {
			return err
		}
		if err := w.FieldName(systemsyms[symbolName]); err != nil {
			return err
		}
		if err := w.WriteString(imp.Name); err != nil {
			return err
		}
		if err := w.FieldName(systemsyms[symbolVersion]); err != nil {
			return err
		}
		if err := w.WriteInt(int64(imp.Version)); err != nil {
			return err
		}
		if err := w.FieldName(systemsyms[symbolMaxID]); err != nil {
			return err
		}
		if err := w.WriteInt(int64(imp.MaxID)); err != nil {
			return err
		}
		if err := w.EndStruct(); err != nil {
			return err
		}
	}
	if err := w.EndList(); err != nil {
		return err
	}
	return w.EndStruct()
}
