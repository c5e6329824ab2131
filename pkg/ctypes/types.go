// Package ctypes defines the C type system used by the semantic core:
// a closed set of kinds, qualifiers, and the kind-specific data each one
// carries (pointer referent, array element/length, function signature,
// struct/union members).
package ctypes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidType is returned for operations that are undefined on a type:
// sizeOf of an incomplete array/struct/union, refType of a non-pointer.
var ErrInvalidType = errors.New("invalid type operation")

// Kind is the closed enumeration of C type kinds this core understands.
type Kind int

const (
	Char Kind = iota
	UChar
	Short
	UShort
	Long
	ULong
	Float
	Double
	Pointer
	Array
	IncompleteArray
	Function
	StructOrUnion
	Void
)

func (k Kind) String() string {
	names := []string{
		"char", "unsigned char", "short", "unsigned short",
		"long", "unsigned long", "float", "double",
		"pointer", "array", "incomplete array", "function",
		"struct/union", "void",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Member is one field of a struct or union.
type Member struct {
	Name string
	Type Type
}

// Type is a C type: a kind tag, qualifiers, and kind-specific payload.
// Types are value-like; every constructor below is a total function of
// its arguments.
type Type struct {
	Kind       Kind
	IsConst    bool
	IsVolatile bool

	// Pointer / Array / IncompleteArray
	Elem *Type

	// Array only
	Length int64

	// Function
	Params   []Type
	Return   *Type
	Variadic bool

	// StructOrUnion
	Tag     string
	IsUnion bool
	Members []Member // nil means incomplete
}

func (t Type) String() string {
	q := ""
	if t.IsConst {
		q += "const "
	}
	if t.IsVolatile {
		q += "volatile "
	}
	switch t.Kind {
	case Pointer:
		return q + t.Elem.String() + " *"
	case Array:
		return fmt.Sprintf("%s%s[%d]", q, t.Elem.String(), t.Length)
	case IncompleteArray:
		return q + t.Elem.String() + "[]"
	case Function:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		variadic := ""
		if t.Variadic {
			variadic = ", ..."
		}
		ret := "void"
		if t.Return != nil {
			ret = t.Return.String()
		}
		return fmt.Sprintf("%s(%s%s) -> %s", q, strings.Join(parts, ", "), variadic, ret)
	case StructOrUnion:
		kw := "struct"
		if t.IsUnion {
			kw = "union"
		}
		if t.Tag == "" {
			return fmt.Sprintf("%s%s <anonymous>", q, kw)
		}
		return fmt.Sprintf("%s%s %s", q, kw, t.Tag)
	default:
		return q + t.Kind.String()
	}
}

// --- Constructors ---

func qualify(k Kind, quals ...bool) Type {
	t := Type{Kind: k}
	if len(quals) > 0 {
		t.IsConst = quals[0]
	}
	if len(quals) > 1 {
		t.IsVolatile = quals[1]
	}
	return t
}

func TChar(quals ...bool) Type   { return qualify(Char, quals...) }
func TUChar(quals ...bool) Type  { return qualify(UChar, quals...) }
func TShort(quals ...bool) Type  { return qualify(Short, quals...) }
func TUShort(quals ...bool) Type { return qualify(UShort, quals...) }
func TLong(quals ...bool) Type   { return qualify(Long, quals...) }
func TULong(quals ...bool) Type  { return qualify(ULong, quals...) }
func TFloat(quals ...bool) Type  { return qualify(Float, quals...) }
func TDouble(quals ...bool) Type { return qualify(Double, quals...) }
func TVoid(quals ...bool) Type   { return qualify(Void, quals...) }

// TPointer returns a pointer to elem.
func TPointer(elem Type, quals ...bool) Type {
	t := qualify(Pointer, quals...)
	t.Elem = &elem
	return t
}

// TArray returns a complete array of length elements of elem.
func TArray(elem Type, length int64, quals ...bool) Type {
	t := qualify(Array, quals...)
	t.Elem = &elem
	t.Length = length
	return t
}

// TIncompleteArray returns an incomplete array of elem (e.g. `T x[]`).
func TIncompleteArray(elem Type, quals ...bool) Type {
	t := qualify(IncompleteArray, quals...)
	t.Elem = &elem
	return t
}

// TFunction returns a function type.
func TFunction(params []Type, ret Type, variadic bool) Type {
	return Type{Kind: Function, Params: params, Return: &ret, Variadic: variadic}
}

// TStruct returns a struct type. members == nil means incomplete.
func TStruct(tag string, members []Member) Type {
	return Type{Kind: StructOrUnion, Tag: tag, Members: members}
}

// TUnion returns a union type. members == nil means incomplete.
func TUnion(tag string, members []Member) Type {
	return Type{Kind: StructOrUnion, Tag: tag, IsUnion: true, Members: members}
}

// --- Equality ---

// EqualType reports whether a and b describe the same type, ignoring
// top-level qualifiers (the C rule: `const int` and `int` compare equal as
// a value type, but qualifiers are never ignored on a pointer's referent).
func EqualType(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Pointer:
		if a.Elem.IsConst != b.Elem.IsConst || a.Elem.IsVolatile != b.Elem.IsVolatile {
			return false
		}
		return EqualType(*a.Elem, *b.Elem)
	case IncompleteArray:
		return EqualType(*a.Elem, *b.Elem)
	case Array:
		return a.Length == b.Length && EqualType(*a.Elem, *b.Elem)
	case Function:
		if a.Variadic != b.Variadic || len(a.Params) != len(b.Params) {
			return false
		}
		if !EqualType(*a.Return, *b.Return) {
			return false
		}
		for i := range a.Params {
			if !EqualType(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	case StructOrUnion:
		return a.IsUnion == b.IsUnion && a.Tag == b.Tag
	default:
		return true
	}
}

// --- Predicates ---

// IsIntegral reports whether t is one of CHAR..ULONG.
func (t Type) IsIntegral() bool {
	switch t.Kind {
	case Char, UChar, Short, UShort, Long, ULong:
		return true
	}
	return false
}

// IsUnsigned reports whether t is an unsigned integral kind.
func (t Type) IsUnsigned() bool {
	switch t.Kind {
	case UChar, UShort, ULong:
		return true
	}
	return false
}

// IsArith reports whether t is integral, FLOAT, or DOUBLE.
func (t Type) IsArith() bool {
	return t.IsIntegral() || t.Kind == Float || t.Kind == Double
}

// IsScalar reports whether t is arithmetic or a pointer.
func (t Type) IsScalar() bool {
	return t.IsArith() || t.Kind == Pointer
}

// IsComplete reports whether t is complete: a struct/union must have
// members and an array must not be an incomplete array; every other kind
// reports true, including VOID and FUNCTION, which SizeOf still rejects.
func (t Type) IsComplete() bool {
	switch t.Kind {
	case StructOrUnion:
		return t.Members != nil
	case IncompleteArray:
		return false
	default:
		return true
	}
}

// RefType returns the referent type of a pointer, or ErrInvalidType if t
// is not a pointer.
func RefType(t Type) (Type, error) {
	if t.Kind != Pointer {
		return Type{}, fmt.Errorf("refType of %s: %w", t, ErrInvalidType)
	}
	return *t.Elem, nil
}

// --- Size and alignment ---

// SizeOf returns the size of t in bytes, per spec: CHAR=1, SHORT=2,
// LONG/ULONG/FLOAT/POINTER=4, DOUBLE=8, arrays = length * element size,
// struct/union computed with natural alignment (§12 of SPEC_FULL.md).
// Fails with ErrInvalidType for an incomplete array or incomplete
// struct/union.
func SizeOf(t Type) (int64, error) {
	switch t.Kind {
	case Char, UChar:
		return 1, nil
	case Short, UShort:
		return 2, nil
	case Long, ULong, Float, Pointer:
		return 4, nil
	case Double:
		return 8, nil
	case Array:
		elemSize, err := SizeOf(*t.Elem)
		if err != nil {
			return 0, err
		}
		return t.Length * elemSize, nil
	case StructOrUnion:
		if !t.IsComplete() {
			return 0, fmt.Errorf("sizeOf incomplete %s: %w", t, ErrInvalidType)
		}
		if t.IsUnion {
			return sizeOfUnion(t)
		}
		return sizeOfStruct(t)
	case IncompleteArray:
		return 0, fmt.Errorf("sizeOf incomplete %s: %w", t, ErrInvalidType)
	default:
		return 0, fmt.Errorf("sizeOf %s: %w", t, ErrInvalidType)
	}
}

// AlignOf returns the alignment of t in bytes.
func AlignOf(t Type) (int64, error) {
	switch t.Kind {
	case Array:
		return AlignOf(*t.Elem)
	case StructOrUnion:
		if !t.IsComplete() {
			return 0, fmt.Errorf("alignOf incomplete %s: %w", t, ErrInvalidType)
		}
		var maxAlign int64 = 1
		for _, m := range t.Members {
			a, err := AlignOf(m.Type)
			if err != nil {
				return 0, err
			}
			if a > maxAlign {
				maxAlign = a
			}
		}
		return maxAlign, nil
	default:
		return SizeOf(t)
	}
}

func alignUp(n, align int64) int64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

// sizeOfStruct computes struct size with natural member alignment,
// adapted from the teacher's cshmgen.sizeofStruct/alignofStruct.
func sizeOfStruct(t Type) (int64, error) {
	var size int64
	for _, m := range t.Members {
		align, err := AlignOf(m.Type)
		if err != nil {
			return 0, err
		}
		msize, err := SizeOf(m.Type)
		if err != nil {
			return 0, err
		}
		size = alignUp(size, align) + msize
	}
	structAlign, err := AlignOf(t)
	if err != nil {
		return 0, err
	}
	return alignUp(size, structAlign), nil
}

func sizeOfUnion(t Type) (int64, error) {
	var maxSize int64
	for _, m := range t.Members {
		msize, err := SizeOf(m.Type)
		if err != nil {
			return 0, err
		}
		if msize > maxSize {
			maxSize = msize
		}
	}
	align, err := AlignOf(t)
	if err != nil {
		return 0, err
	}
	return alignUp(maxSize, align), nil
}

// FieldOffset returns the byte offset of fieldName within struct/union t.
// Returns ErrInvalidType if t is not a struct/union or the field is
// unknown.
func FieldOffset(t Type, fieldName string) (int64, error) {
	if t.Kind != StructOrUnion {
		return 0, fmt.Errorf("fieldOffset of non-struct %s: %w", t, ErrInvalidType)
	}
	if t.IsUnion {
		for _, m := range t.Members {
			if m.Name == fieldName {
				return 0, nil
			}
		}
		return 0, fmt.Errorf("fieldOffset: no member %q in %s: %w", fieldName, t, ErrInvalidType)
	}
	var offset int64
	for _, m := range t.Members {
		align, err := AlignOf(m.Type)
		if err != nil {
			return 0, err
		}
		offset = alignUp(offset, align)
		if m.Name == fieldName {
			return offset, nil
		}
		msize, err := SizeOf(m.Type)
		if err != nil {
			return 0, err
		}
		offset += msize
	}
	return 0, fmt.Errorf("fieldOffset: no member %q in %s: %w", fieldName, t, ErrInvalidType)
}
