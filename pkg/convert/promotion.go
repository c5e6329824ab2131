package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// IntegralPromotion promotes expr per the usual C rule: CHAR/SHORT/LONG →
// LONG, UCHAR/USHORT/ULONG → ULONG, preserving qualifiers. Returns the
// promoted expression and its new kind. Fails ErrNonIntegralPromotion if
// expr is not integral (spec.md §4.4).
func IntegralPromotion(expr texpr.Expr) (texpr.Expr, ctypes.Kind, error) {
	src := expr.Type()
	if !src.IsIntegral() {
		return nil, 0, fmt.Errorf("IntegralPromotion: %s is not integral: %w", src, ErrNonIntegralPromotion)
	}

	var destKind ctypes.Kind
	if src.IsUnsigned() {
		destKind = ctypes.ULong
	} else {
		destKind = ctypes.Long
	}
	dest := withQualifiers(destKind, src)

	promoted, err := MakeCast(expr, dest)
	if err != nil {
		return nil, 0, err
	}
	return promoted, destKind, nil
}

// UsualArithmeticConversion balances e1 and e2 per the standard priority
// order: DOUBLE beats FLOAT beats ULONG beats LONG. Each operand's own
// qualifiers are preserved on its own converted side (spec.md §4.4).
func UsualArithmeticConversion(e1, e2 texpr.Expr) (texpr.Expr, texpr.Expr, ctypes.Kind, error) {
	commonKind := commonArithKind(e1.Type(), e2.Type())

	c1, err := MakeCast(e1, withQualifiers(commonKind, e1.Type()))
	if err != nil {
		return nil, nil, 0, err
	}
	c2, err := MakeCast(e2, withQualifiers(commonKind, e2.Type()))
	if err != nil {
		return nil, nil, 0, err
	}
	return c1, c2, commonKind, nil
}

func commonArithKind(t1, t2 ctypes.Type) ctypes.Kind {
	if t1.Kind == ctypes.Double || t2.Kind == ctypes.Double {
		return ctypes.Double
	}
	if t1.Kind == ctypes.Float || t2.Kind == ctypes.Float {
		return ctypes.Float
	}
	if t1.Kind == ctypes.ULong || t2.Kind == ctypes.ULong {
		return ctypes.ULong
	}
	return ctypes.Long
}

// UsualScalarConversion first maps any POINTER operand to ULONG via
// FromPointer, using the *other* operand's environment for that coercion —
// a pointer-to-integer step inside a binary expression must be typed in the
// expression's shared scope, not the pointer operand's own — then defers to
// UsualArithmeticConversion (spec.md §4.4).
func UsualScalarConversion(e1, e2 texpr.Expr) (texpr.Expr, texpr.Expr, ctypes.Kind, error) {
	var err error
	env1, env2 := e1.Env(), e2.Env()
	if e1.Type().Kind == ctypes.Pointer {
		e1, err = FromPointer(e1, ctypes.TULong(), env2)
		if err != nil {
			return nil, nil, 0, err
		}
	}
	if e2.Type().Kind == ctypes.Pointer {
		e2, err = FromPointer(e2, ctypes.TULong(), env1)
		if err != nil {
			return nil, nil, 0, err
		}
	}
	return UsualArithmeticConversion(e1, e2)
}
