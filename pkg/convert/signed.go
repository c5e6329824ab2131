package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// SignedIntegralToArith converts an expression of signed integral kind
// (CHAR, SHORT, or LONG) to dest, which must be arithmetic. Constant
// expressions fold directly to a narrower Const* node; everything else
// decomposes into at most two cast primitives (spec.md §4.3).
func SignedIntegralToArith(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)
	src := expr.Type()

	if expr.IsConstExpr() {
		c, ok := expr.(texpr.ConstLong)
		if !ok {
			return nil, fmt.Errorf("SignedIntegralToArith: constant %v is not a ConstLong: %w", expr, ErrUnsupportedSource)
		}
		return foldSignedIntegral(c.Value, dest, e)
	}

	switch src.Kind {
	case ctypes.Char:
		switch dest.Kind {
		case ctypes.Char:
			return expr, nil
		case ctypes.UChar:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.Short, ctypes.UShort:
			return wrap(expr, castprim.INT8_TO_INT16, dest, e), nil
		case ctypes.Long, ctypes.ULong:
			return wrap(expr, castprim.INT8_TO_INT32, dest, e), nil
		case ctypes.Float:
			return wrapChain(expr, castprim.INT8_TO_INT32, ctypes.TLong(), castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrapChain(expr, castprim.INT8_TO_INT32, ctypes.TLong(), castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	case ctypes.Short:
		switch dest.Kind {
		case ctypes.Char, ctypes.UChar:
			return wrap(expr, castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.Short:
			return expr, nil
		case ctypes.UShort:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.Long, ctypes.ULong:
			return wrap(expr, castprim.INT16_TO_INT32, dest, e), nil
		case ctypes.Float:
			return wrapChain(expr, castprim.INT16_TO_INT32, ctypes.TLong(), castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrapChain(expr, castprim.INT16_TO_INT32, ctypes.TLong(), castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	case ctypes.Long:
		switch dest.Kind {
		case ctypes.Char, ctypes.UChar:
			return wrap(expr, castprim.PRESERVE_INT8, dest, e), nil
		case ctypes.Short, ctypes.UShort:
			return wrap(expr, castprim.PRESERVE_INT16, dest, e), nil
		case ctypes.Long:
			return expr, nil
		case ctypes.ULong:
			return wrap(expr, castprim.NOP, dest, e), nil
		case ctypes.Float:
			return wrap(expr, castprim.INT32_TO_FLOAT, dest, e), nil
		case ctypes.Double:
			return wrap(expr, castprim.INT32_TO_DOUBLE, dest, e), nil
		}
	}

	return nil, fmt.Errorf("SignedIntegralToArith: no mapping from %s to %s: %w", src, dest, ErrUnsupportedConversion)
}

// foldSignedIntegral computes the folded Const* node for a signed
// integral constant v (already the canonical int32 representation of a
// CHAR/SHORT/LONG value) converting to dest.
func foldSignedIntegral(v int32, dest ctypes.Type, env semenv.Handle) (texpr.Expr, error) {
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
		return texpr.ConstLong{Value: v, Typ: dest, E: env}, nil
	case ctypes.ULong:
		return texpr.ConstULong{Value: uint32(v), Typ: dest, E: env}, nil
	case ctypes.Float:
		return texpr.ConstFloat{Value: float32(v), E: env}, nil
	case ctypes.Double:
		return texpr.ConstDouble{Value: float64(v), E: env}, nil
	default:
		return nil, fmt.Errorf("SignedIntegralToArith: no constant mapping to %s: %w", dest, ErrUnsupportedConversion)
	}
}
