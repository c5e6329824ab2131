// Package texpr defines the typed expression model: a polymorphic
// expression node carrying a type, an environment handle, an lvalue flag,
// and a constant-expression flag (spec.md §3/§9). One struct variant exists
// per constant arithmetic kind, one for pointer constants, one generic
// non-constant placeholder (Var) for every other expression form the
// parser produces (out of scope here), and one TypeCast variant whose Prim
// field names the cast primitive it applies.
package texpr

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
)

// Expr is the common interface every typed expression node satisfies.
type Expr interface {
	Type() ctypes.Type
	Env() semenv.Handle
	IsLValue() bool
	IsConstExpr() bool
}

// ConstLong is a constant of a signed 32-bit integral kind (CHAR, SHORT, or
// LONG — the surrounding Typ distinguishes which).
type ConstLong struct {
	Value int32
	Typ   ctypes.Type
	E     semenv.Handle
}

func (c ConstLong) Type() ctypes.Type    { return c.Typ }
func (c ConstLong) Env() semenv.Handle   { return c.E }
func (c ConstLong) IsLValue() bool       { return false }
func (c ConstLong) IsConstExpr() bool    { return true }
func (c ConstLong) String() string       { return fmt.Sprintf("ConstLong(%d : %s)", c.Value, c.Typ) }

// ConstULong is a constant of an unsigned integral kind (UCHAR, USHORT, or
// ULONG).
type ConstULong struct {
	Value uint32
	Typ   ctypes.Type
	E     semenv.Handle
}

func (c ConstULong) Type() ctypes.Type  { return c.Typ }
func (c ConstULong) Env() semenv.Handle { return c.E }
func (c ConstULong) IsLValue() bool     { return false }
func (c ConstULong) IsConstExpr() bool  { return true }
func (c ConstULong) String() string     { return fmt.Sprintf("ConstULong(%d : %s)", c.Value, c.Typ) }

// ConstFloat is a 32-bit IEEE-754 floating constant.
type ConstFloat struct {
	Value float32
	E     semenv.Handle
}

func (c ConstFloat) Type() ctypes.Type  { return ctypes.TFloat() }
func (c ConstFloat) Env() semenv.Handle { return c.E }
func (c ConstFloat) IsLValue() bool     { return false }
func (c ConstFloat) IsConstExpr() bool  { return true }
func (c ConstFloat) String() string     { return fmt.Sprintf("ConstFloat(%g)", c.Value) }

// ConstDouble is a 64-bit IEEE-754 floating constant.
type ConstDouble struct {
	Value float64
	E     semenv.Handle
}

func (c ConstDouble) Type() ctypes.Type  { return ctypes.TDouble() }
func (c ConstDouble) Env() semenv.Handle { return c.E }
func (c ConstDouble) IsLValue() bool     { return false }
func (c ConstDouble) IsConstExpr() bool  { return true }
func (c ConstDouble) String() string     { return fmt.Sprintf("ConstDouble(%g)", c.Value) }

// ConstPtr is a pointer-valued constant (the null pointer, a cast integer
// constant, or an address constant folded at compile time).
type ConstPtr struct {
	Value uint32
	Typ   ctypes.Type
	E     semenv.Handle
}

func (c ConstPtr) Type() ctypes.Type  { return c.Typ }
func (c ConstPtr) Env() semenv.Handle { return c.E }
func (c ConstPtr) IsLValue() bool     { return false }
func (c ConstPtr) IsConstExpr() bool  { return true }
func (c ConstPtr) String() string     { return fmt.Sprintf("ConstPtr(0x%x : %s)", c.Value, c.Typ) }

// TypeCast wraps Inner in one cast-primitive application, retyping it to
// Typ. A TypeCast is never an lvalue and is never itself a constant
// expression: constant folding always happens before a primitive would be
// wrapped (spec.md §4.3), so any surviving TypeCast node is non-constant by
// construction.
type TypeCast struct {
	Prim  castprim.Primitive
	Inner Expr
	Typ   ctypes.Type
	// E is normally Inner.Env(); it is only set to something else when the
	// conversion engine was explicitly asked to re-tag into a different
	// scope (a pointer conversion crossing a declaration boundary,
	// spec.md §9).
	E semenv.Handle
}

func (c TypeCast) Type() ctypes.Type  { return c.Typ }
func (c TypeCast) Env() semenv.Handle { return c.E }
func (c TypeCast) IsLValue() bool     { return false }
func (c TypeCast) IsConstExpr() bool  { return false }
func (c TypeCast) String() string {
	return fmt.Sprintf("TypeCast(%s, %s, %s)", c.Prim, c.Inner, c.Typ)
}

// Var is a non-constant named lvalue of the given type. It stands in for
// every surface expression form the parser can produce that the semantic
// core treats opaquely (spec.md §1 — the parser and its full expression
// grammar are out of scope); the conversion engine only needs to know a
// Var's type, environment, and that it is an lvalue.
type Var struct {
	Name string
	Typ  ctypes.Type
	E    semenv.Handle
}

func (v Var) Type() ctypes.Type  { return v.Typ }
func (v Var) Env() semenv.Handle { return v.E }
func (v Var) IsLValue() bool     { return true }
func (v Var) IsConstExpr() bool  { return false }
func (v Var) String() string     { return fmt.Sprintf("Var(%s : %s)", v.Name, v.Typ) }
