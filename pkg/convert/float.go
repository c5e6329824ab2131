package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// FloatToArith converts an expression of floating kind (FLOAT or DOUBLE) to
// dest, which must be arithmetic. FLOAT → CHAR and FLOAT → SHORT go through
// LONG first (there is no narrow float-to-int primitive in the closed set);
// DOUBLE → CHAR and DOUBLE → SHORT first narrow to FLOAT with
// DOUBLE_TO_FLOAT and then take that same path. FLOAT → UCHAR has no
// mapping at all and always fails —
// the closed primitive set has no float-to-uint8 primitive and routing it
// through INT32 would silently accept values no C compiler accepts without
// a diagnostic. DOUBLE → UCHAR is not affected by this restriction: it
// follows the ordinary DOUBLE_TO_INT32-then-PRESERVE_INT8 path like any
// other narrow destination (spec.md §4.3).
func FloatToArith(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)
	src := expr.Type()

	if src.Kind == ctypes.Float && dest.Kind == ctypes.UChar {
		return nil, fmt.Errorf("FloatToArith: FLOAT has no UCHAR mapping: %w", ErrUnsupportedConversion)
	}

	if expr.IsConstExpr() {
		switch c := expr.(type) {
		case texpr.ConstFloat:
			return foldFloatingConst(float64(c.Value), dest, e)
		case texpr.ConstDouble:
			return foldFloatingConst(c.Value, dest, e)
		default:
			return nil, fmt.Errorf("FloatToArith: constant %v is not ConstFloat/ConstDouble: %w", expr, ErrUnsupportedSource)
		}
	}

	switch src.Kind {
	case ctypes.Float:
		switch dest.Kind {
		case ctypes.Char:
			return wrapChain(expr, castprim.FLOAT_TO_INT32, ctypes.TLong(), castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.Short:
			return wrapChain(expr, castprim.FLOAT_TO_INT32, ctypes.TLong(), castprim.PRESERVE_INT16, dest, e), nil
		case ctypes.Long:
			return wrap(expr, castprim.FLOAT_TO_INT32, dest, e), nil
		case ctypes.UShort:
			return wrapChain(expr, castprim.FLOAT_TO_INT32, ctypes.TLong(), castprim.PRESERVE_INT16, dest, e), nil
		case ctypes.ULong:
			return wrap(expr, castprim.FLOAT_TO_INT32, dest, e), nil
		case ctypes.Float:
			return expr, nil
		case ctypes.Double:
			return wrap(expr, castprim.FLOAT_TO_DOUBLE, dest, e), nil
		}
	case ctypes.Double:
		switch dest.Kind {
		case ctypes.Char, ctypes.Short:
			// Double rounding: only CHAR and SHORT recurse through FLOAT
			// first (matches the reference behavior, spec.md §9); UCHAR and
			// USHORT take the ordinary DOUBLE_TO_INT32-then-PRESERVE path
			// below.
			viaFloat, err := FloatToArith(wrap(expr, castprim.DOUBLE_TO_FLOAT, ctypes.TFloat(), e), dest, e)
			if err != nil {
				return nil, err
			}
			return viaFloat, nil
		case ctypes.UChar:
			return wrapChain(expr, castprim.DOUBLE_TO_INT32, ctypes.TLong(), castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.UShort:
			return wrapChain(expr, castprim.DOUBLE_TO_INT32, ctypes.TLong(), castprim.PRESERVE_INT16, dest, e), nil
		case ctypes.Long:
			return wrap(expr, castprim.DOUBLE_TO_INT32, dest, e), nil
		case ctypes.ULong:
			return wrap(expr, castprim.DOUBLE_TO_INT32, dest, e), nil
		case ctypes.Float:
			return wrap(expr, castprim.DOUBLE_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return expr, nil
		}
	}

	return nil, fmt.Errorf("FloatToArith: no mapping from %s to %s: %w", src, dest, ErrUnsupportedConversion)
}

// foldFloatingConst computes the folded Const* node for a floating constant
// v converting to dest. Go's float-to-integer conversion truncates toward
// zero, matching C's semantics for representable values exactly; out-of-
// range behavior is undefined in C and left to Go's own (also unspecified
// for out-of-range) conversion here.
func foldFloatingConst(v float64, dest ctypes.Type, env semenv.Handle) (texpr.Expr, error) {
	switch dest.Kind {
	case ctypes.Char:
		return texpr.ConstLong{Value: int32(int8(int32(v))), Typ: dest, E: env}, nil
	case ctypes.UChar:
		return texpr.ConstULong{Value: uint32(uint8(int32(v))), Typ: dest, E: env}, nil
	case ctypes.Short:
		return texpr.ConstLong{Value: int32(int16(int32(v))), Typ: dest, E: env}, nil
	case ctypes.UShort:
		return texpr.ConstULong{Value: uint32(uint16(int32(v))), Typ: dest, E: env}, nil
	case ctypes.Long:
		return texpr.ConstLong{Value: int32(v), Typ: dest, E: env}, nil
	case ctypes.ULong:
		return texpr.ConstULong{Value: uint32(int32(v)), Typ: dest, E: env}, nil
	case ctypes.Float:
		return texpr.ConstFloat{Value: float32(v), E: env}, nil
	case ctypes.Double:
		return texpr.ConstDouble{Value: v, E: env}, nil
	default:
		return nil, fmt.Errorf("FloatToArith: no constant mapping to %s: %w", dest, ErrUnsupportedConversion)
	}
}
