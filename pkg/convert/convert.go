// Package convert implements the conversion engine (spec.md §4.3): the
// four public entry points MakeCast, SignedIntegralToArith,
// UnsignedIntegralToArith, FloatToArith, plus the pointer-direction helpers
// FromPointer/ToPointer, and the promotion/usual-conversion helpers built
// on top of them. This is where C's implicit and explicit conversion
// rules live: constant expressions fold to a narrower Const* node;
// everything else decomposes into at most two cast primitives from the
// closed set in pkg/castprim, except DOUBLE → CHAR and DOUBLE → SHORT,
// which narrow to FLOAT first and so take three.
package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// envArg resolves the optional trailing environment argument every entry
// point accepts: MakeCast(expr, dest) uses expr's own environment,
// MakeCast(expr, dest, env) re-tags the result into env (used when a
// conversion crosses a declaration boundary, spec.md §9). Where no
// conversion is needed and expr itself is returned, it keeps its own
// environment.
func envArg(expr texpr.Expr, env []semenv.Handle) semenv.Handle {
	if len(env) > 0 {
		return env[0]
	}
	return expr.Env()
}

// withQualifiers builds a fresh Type of kind k, copying qualifiers from
// like (used to preserve const/volatile across a promotion or cast).
func withQualifiers(k ctypes.Kind, like ctypes.Type) ctypes.Type {
	return ctypes.Type{Kind: k, IsConst: like.IsConst, IsVolatile: like.IsVolatile}
}

// wrap builds a single TypeCast node.
func wrap(expr texpr.Expr, prim castprim.Primitive, dest ctypes.Type, env semenv.Handle) texpr.Expr {
	return texpr.TypeCast{Prim: prim, Inner: expr, Typ: dest, E: env}
}

// wrapChain builds two chained TypeCast nodes: expr -prim1-> mid -prim2-> dest.
func wrapChain(expr texpr.Expr, prim1 castprim.Primitive, mid ctypes.Type, prim2 castprim.Primitive, dest ctypes.Type, env semenv.Handle) texpr.Expr {
	step := wrap(expr, prim1, mid, env)
	return wrap(step, prim2, dest, env)
}

// MakeCast is the single top-level entry point for every conversion the
// semantic core performs, implicit or explicit (spec.md §4.3).
func MakeCast(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)

	if ctypes.EqualType(expr.Type(), dest) {
		return expr, nil
	}

	src := expr.Type()
	if src.Kind == ctypes.Pointer {
		return FromPointer(expr, dest, e)
	}
	if dest.Kind == ctypes.Pointer {
		return ToPointer(expr, dest, e)
	}

	switch src.Kind {
	case ctypes.Char, ctypes.Short, ctypes.Long:
		return SignedIntegralToArith(expr, dest, e)
	case ctypes.UChar, ctypes.UShort, ctypes.ULong:
		return UnsignedIntegralToArith(expr, dest, e)
	case ctypes.Float, ctypes.Double:
		return FloatToArith(expr, dest, e)
	default:
		return nil, fmt.Errorf("MakeCast: cannot convert from %s: %w", src, ErrUnsupportedSource)
	}
}
