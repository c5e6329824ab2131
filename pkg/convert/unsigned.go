package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// UnsignedIntegralToArith converts an expression of unsigned integral kind
// (UCHAR, USHORT, or ULONG) to dest, which must be arithmetic. It mirrors
// SignedIntegralToArith with zero-extending primitives, except that
// ULONG → FLOAT/DOUBLE reuses the signed INT32_TO_FLOAT/INT32_TO_DOUBLE
// primitive — there is no unsigned-to-float primitive in the closed set —
// which is lossy for values with the high bit set. This is a known,
// intentionally preserved defect (spec.md §9 open question a); constant
// folding reproduces the same bit pattern so folded and emitted results
// never disagree.
func UnsignedIntegralToArith(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)
	src := expr.Type()

	if expr.IsConstExpr() {
		c, ok := expr.(texpr.ConstULong)
		if !ok {
			return nil, fmt.Errorf("UnsignedIntegralToArith: constant %v is not a ConstULong: %w", expr, ErrUnsupportedSource)
		}
		return foldUnsignedIntegral(c.Value, dest, e)
	}

	switch src.Kind {
	case ctypes.UChar:
		switch dest.Kind {
		case ctypes.Char:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.UChar:
			return expr, nil
		case ctypes.Short, ctypes.UShort:
			return wrap(expr, castprim.UINT8_TO_UINT16, dest, e), nil
		case ctypes.Long, ctypes.ULong:
			return wrap(expr, castprim.UINT8_TO_UINT32, dest, e), nil
		case ctypes.Float:
			return wrapChain(expr, castprim.UINT8_TO_UINT32, ctypes.TULong(), castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrapChain(expr, castprim.UINT8_TO_UINT32, ctypes.TULong(), castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	case ctypes.UShort:
		switch dest.Kind {
		case ctypes.Char, ctypes.UChar:
			return wrap(expr, castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.Short:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.UShort:
			return expr, nil
		case ctypes.Long, ctypes.ULong:
			return wrap(expr, castprim.UINT16_TO_UINT32, dest, e), nil
		case ctypes.Float:
			return wrapChain(expr, castprim.UINT16_TO_UINT32, ctypes.TULong(), castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrapChain(expr, castprim.UINT16_TO_UINT32, ctypes.TULong(), castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	case ctypes.ULong:
		switch dest.Kind {
		case ctypes.Char, ctypes.UChar:
			return wrap(expr, castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.Short, ctypes.UShort:
			return wrap(expr, castprim.PRESERVE_INT16, dest, e), nil
		case ctypes.Long:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.ULong:
			return expr, nil
		case ctypes.Float:
			return wrap(expr, castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrap(expr, castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	}

	return nil, fmt.Errorf("UnsignedIntegralToArith: no mapping from %s to %s: %w", src, dest, ErrUnsupportedConversion)
}

// foldUnsignedIntegral computes the folded Const* node for an unsigned
// integral constant v (the canonical uint32 representation of a
// UCHAR/USHORT/ULONG value) converting to dest.
func foldUnsignedIntegral(v uint32, dest ctypes.Type, env semenv.Handle) (texpr.Expr, error) {
	switch dest.Kind {
	case ctypes.Char:
		return texpr.ConstLong{Value: int32(int8(v)), Typ: dest, E: env}, nil
	case ctypes.UChar:
		return texpr.ConstULong{Value: uint32(uint8(v)), Typ: dest, E: env}, nil
	case ctypes.Short:
		return texpr.ConstLong{Value: int32(int16(v)), Typ: dest, E: env}, nil
	case ctypes.UShort:
		return texpr.ConstULong{Value: uint32(uint16(v)), Typ: dest, E: env}, nil
	case ctypes.Long:
		return texpr.ConstLong{Value: int32(v), Typ: dest, E: env}, nil
	case ctypes.ULong:
		return texpr.ConstULong{Value: v, Typ: dest, E: env}, nil
	case ctypes.Float:
		// INT32_TO_FLOAT reused per spec.md §9(a): reinterpret the uint32
		// bit pattern as a signed int32 before converting, reproducing the
		// same high-bit defect the emitted primitive has.
		return texpr.ConstFloat{Value: float32(int32(v)), E: env}, nil
	case ctypes.Double:
		return texpr.ConstDouble{Value: float64(int32(v)), E: env}, nil
	default:
		return nil, fmt.Errorf("UnsignedIntegralToArith: no constant mapping to %s: %w", dest, ErrUnsupportedConversion)
	}
}
