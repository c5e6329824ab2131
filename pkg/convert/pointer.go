package convert

import (
	"fmt"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

// FromPointer converts a pointer-typed expr to dest, which may itself be a
// pointer (retype only) or an integral type (route through ULONG, then
// recurse via MakeCast into the true destination — spec.md §4.3).
func FromPointer(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)

	switch dest.Kind {
	case ctypes.Pointer:
		if c, ok := expr.(texpr.ConstPtr); ok {
			return texpr.ConstPtr{Value: c.Value, Typ: dest, E: e}, nil
		}
		return wrap(expr, castprim.NOP, dest, e), nil
	default:
		if !dest.IsIntegral() {
			return nil, fmt.Errorf("FromPointer: cannot convert pointer to %s: %w", dest, ErrUnsupportedConversion)
		}
		ulong, err := toULong(expr, e)
		if err != nil {
			return nil, err
		}
		if dest.Kind == ctypes.ULong {
			return ulong, nil
		}
		return MakeCast(ulong, dest, e)
	}
}

// toULong coerces a pointer-typed expr to ULONG: a constant folds directly,
// everything else is a NOP retype (pointers and ULONG share representation).
func toULong(expr texpr.Expr, env semenv.Handle) (texpr.Expr, error) {
	if c, ok := expr.(texpr.ConstPtr); ok {
		return texpr.ConstULong{Value: c.Value, Typ: ctypes.TULong(), E: env}, nil
	}
	return wrap(expr, castprim.NOP, ctypes.TULong(), env), nil
}

// ToPointer converts expr to the pointer type dest. Integral sources route
// through ULONG first via the signed/unsigned engine; FUNCTION sources
// require the referent to match the source function type exactly; ARRAY
// sources decay with a NOP cast (spec.md §4.3).
func ToPointer(expr texpr.Expr, dest ctypes.Type, env ...semenv.Handle) (texpr.Expr, error) {
	e := envArg(expr, env)
	src := expr.Type()

	switch {
	case src.Kind == ctypes.Pointer:
		if c, ok := expr.(texpr.ConstPtr); ok {
			return texpr.ConstPtr{Value: c.Value, Typ: dest, E: e}, nil
		}
		return wrap(expr, castprim.NOP, dest, e), nil

	case src.IsIntegral():
		var asULong texpr.Expr
		var err error
		if src.IsUnsigned() {
			asULong, err = UnsignedIntegralToArith(expr, ctypes.TULong(), e)
		} else {
			asULong, err = SignedIntegralToArith(expr, ctypes.TULong(), e)
		}
		if err != nil {
			return nil, err
		}
		if c, ok := asULong.(texpr.ConstULong); ok {
			return texpr.ConstPtr{Value: c.Value, Typ: dest, E: e}, nil
		}
		return wrap(asULong, castprim.NOP, dest, e), nil

	case src.Kind == ctypes.Function:
		referent, err := ctypes.RefType(dest)
		if err != nil {
			return nil, fmt.Errorf("ToPointer: %w", err)
		}
		if !ctypes.EqualType(referent, src) {
			return nil, fmt.Errorf("ToPointer: function %s does not match pointer referent %s: %w", src, referent, ErrIncompatibleFunctionPointer)
		}
		return wrap(expr, castprim.NOP, dest, e), nil

	case src.Kind == ctypes.Array:
		return wrap(expr, castprim.NOP, dest, e), nil

	default:
		return nil, fmt.Errorf("ToPointer: cannot convert %s to pointer: %w", src, ErrUnsupportedConversion)
	}
}
