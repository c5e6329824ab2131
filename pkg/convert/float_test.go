package convert

import (
	"errors"
	"testing"

	"github.com/ancc-project/ancc/pkg/castprim"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
)

func TestFloatToArithRejectsUChar(t *testing.T) {
	v := texpr.Var{Name: "x", Typ: ctypes.TFloat(), E: semenv.Global}
	_, err := FloatToArith(v, ctypes.TUChar())
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Fatalf("expected ErrUnsupportedConversion, got %v", err)
	}

	c := texpr.ConstFloat{Value: 1.0, E: semenv.Global}
	_, err = FloatToArith(c, ctypes.TUChar())
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Fatalf("expected ErrUnsupportedConversion for constant too, got %v", err)
	}
}

func TestFloatToArithConstantFolds(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		dest ctypes.Type
		want int32
	}{
		{"FLOAT(3.9) to LONG truncates toward zero", 3.9, ctypes.TLong(), 3},
		{"FLOAT(-3.9) to LONG truncates toward zero", -3.9, ctypes.TLong(), -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := texpr.ConstFloat{Value: float32(tc.v), E: semenv.Global}
			result, err := FloatToArith(c, tc.dest)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := result.(texpr.ConstLong)
			if !ok {
				t.Fatalf("expected ConstLong, got %T", result)
			}
			if got.Value != tc.want {
				t.Errorf("got %d, want %d", got.Value, tc.want)
			}
		})
	}
}

func TestFloatToArithDoubleToUCharConstantFolds(t *testing.T) {
	c := texpr.ConstDouble{Value: 255.9, E: semenv.Global}
	result, err := FloatToArith(c, ctypes.TUChar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := result.(texpr.ConstULong)
	if !ok {
		t.Fatalf("expected ConstULong, got %T", result)
	}
	if got.Value != 255 {
		t.Errorf("got %d, want 255", got.Value)
	}
}

func TestFloatToArithWrapsPrimitives(t *testing.T) {
	tests := []struct {
		name       string
		src        ctypes.Type
		dest       ctypes.Type
		outerPrim  castprim.Primitive
		innerPrim  castprim.Primitive
		hasChained bool
	}{
		{"FLOAT to CHAR", ctypes.TFloat(), ctypes.TChar(), castprim.PRESERVE_INT8, castprim.FLOAT_TO_INT32, true},
		{"FLOAT to LONG", ctypes.TFloat(), ctypes.TLong(), castprim.FLOAT_TO_INT32, 0, false},
		{"FLOAT to DOUBLE", ctypes.TFloat(), ctypes.TDouble(), castprim.FLOAT_TO_DOUBLE, 0, false},
		{"DOUBLE to LONG", ctypes.TDouble(), ctypes.TLong(), castprim.DOUBLE_TO_INT32, 0, false},
		{"DOUBLE to FLOAT", ctypes.TDouble(), ctypes.TFloat(), castprim.DOUBLE_TO_FLOAT, 0, false},
		{"DOUBLE to UCHAR direct, no FLOAT recursion", ctypes.TDouble(), ctypes.TUChar(), castprim.PRESERVE_INT8, castprim.DOUBLE_TO_INT32, true},
		{"DOUBLE to USHORT direct, no FLOAT recursion", ctypes.TDouble(), ctypes.TUShort(), castprim.PRESERVE_INT16, castprim.DOUBLE_TO_INT32, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := texpr.Var{Name: "x", Typ: tc.src, E: semenv.Global}
			result, err := FloatToArith(v, tc.dest)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cast, ok := result.(texpr.TypeCast)
			if !ok {
				t.Fatalf("expected TypeCast, got %T", result)
			}
			if tc.hasChained {
				if cast.Prim != tc.outerPrim {
					t.Errorf("got outer prim %v, want %v", cast.Prim, tc.outerPrim)
				}
				inner, ok := cast.Inner.(texpr.TypeCast)
				if !ok {
					t.Fatalf("expected chained TypeCast, got %T", cast.Inner)
				}
				if inner.Prim != tc.innerPrim {
					t.Errorf("got inner prim %v, want %v", inner.Prim, tc.innerPrim)
				}
				return
			}
			if cast.Prim != tc.outerPrim {
				t.Errorf("got prim %v, want %v", cast.Prim, tc.outerPrim)
			}
		})
	}
}

// TestFloatToArithDoubleToCharRecursesThroughFloat pins down the
// double-rounding behavior: DOUBLE → CHAR has no direct primitive and goes
// through a DOUBLE_TO_FLOAT step first, then FLOAT → CHAR's own
// decomposition.
func TestFloatToArithDoubleToCharRecursesThroughFloat(t *testing.T) {
	v := texpr.Var{Name: "x", Typ: ctypes.TDouble(), E: semenv.Global}
	result, err := FloatToArith(v, ctypes.TChar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := result.(texpr.TypeCast)
	if !ok {
		t.Fatalf("expected TypeCast, got %T", result)
	}
	if outer.Prim != castprim.PRESERVE_INT8 {
		t.Fatalf("expected outer PRESERVE_INT8, got %v", outer.Prim)
	}
	mid, ok := outer.Inner.(texpr.TypeCast)
	if !ok {
		t.Fatalf("expected chained TypeCast, got %T", outer.Inner)
	}
	if mid.Prim != castprim.FLOAT_TO_INT32 {
		t.Fatalf("expected mid FLOAT_TO_INT32, got %v", mid.Prim)
	}
	inner, ok := mid.Inner.(texpr.TypeCast)
	if !ok {
		t.Fatalf("expected innermost TypeCast, got %T", mid.Inner)
	}
	if inner.Prim != castprim.DOUBLE_TO_FLOAT {
		t.Fatalf("expected innermost DOUBLE_TO_FLOAT, got %v", inner.Prim)
	}
}
