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

// Type is one of the ion datatypes.
type Type byte

const (
	NullType Type = iota
	BoolType
	UintType
	IntType
	FloatType
	DecimalType
	TimestampType
	SymbolType
	StringType
	ClobType
	BlobType
	ListType
	SexpType
	StructType
	AnnotationType
	ReservedType
	InvalidType = Type(0xff)
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case UintType:
		return "uint"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case DecimalType:
		return "decimal"
	case TimestampType:
		return "timestamp"
	case SymbolType:
		return "symbol"
	case StringType:
		return "string"
	case ClobType:
		return "clob"
	case BlobType:
		return "blob"
	case ListType:
		return "list"
	case SexpType:
		return "sexp"
	case StructType:
		return "struct"
	case AnnotationType:
		return "annotation"
	case ReservedType:
		return "reserved"
	default:
		return "invalid"
	}
}

// typedNull is the Ion text image for a null of the given type.
func (t Type) typedNull() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "null.bool"
	case IntType, UintType:
		return "null.int"
	case FloatType:
		return "null.float"
	case DecimalType:
		return "null.decimal"
	case TimestampType:
		return "null.timestamp"
	case SymbolType:
		return "null.symbol"
	case StringType:
		return "null.string"
	case ClobType:
		return "null.clob"
	case BlobType:
		return "null.blob"
	case SexpType:
		return "null.sexp"
	case ListType:
		return "null.list"
	case StructType:
		return "null.struct"
	default:
		return "null"
	}
}
