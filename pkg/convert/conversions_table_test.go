package convert

import (
	"os"
	"testing"

	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
	"gopkg.in/yaml.v3"
)

// conversionCase is one row of testdata/conversions.yaml: a constant of
// src_kind converting to dest_kind, expected to fold to the given variant
// and value, or to fail with fold: error.
type conversionCase struct {
	Name       string `yaml:"name"`
	SrcKind    string `yaml:"src_kind"`
	ConstValue int64  `yaml:"const_value"`
	DestKind   string `yaml:"dest_kind"`
	Fold       string `yaml:"fold"`
	FoldValue  int64  `yaml:"fold_value"`
}

type conversionFile struct {
	Tests []conversionCase `yaml:"tests"`
}

func kindByName(name string) ctypes.Type {
	switch name {
	case "char":
		return ctypes.TChar()
	case "uchar":
		return ctypes.TUChar()
	case "short":
		return ctypes.TShort()
	case "ushort":
		return ctypes.TUShort()
	case "long":
		return ctypes.TLong()
	case "ulong":
		return ctypes.TULong()
	case "float":
		return ctypes.TFloat()
	case "double":
		return ctypes.TDouble()
	}
	panic("unknown kind: " + name)
}

// constExprFor builds the canonical Const* node for srcKind carrying value.
func constExprFor(kind ctypes.Type, value int64) texpr.Expr {
	switch kind.Kind {
	case ctypes.Char, ctypes.Short, ctypes.Long:
		return texpr.ConstLong{Value: int32(value), Typ: kind, E: semenv.Global}
	case ctypes.UChar, ctypes.UShort, ctypes.ULong:
		return texpr.ConstULong{Value: uint32(value), Typ: kind, E: semenv.Global}
	case ctypes.Float:
		return texpr.ConstFloat{Value: float32(value), E: semenv.Global}
	case ctypes.Double:
		return texpr.ConstDouble{Value: float64(value), E: semenv.Global}
	}
	panic("unsupported const kind")
}

func TestConversionsYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/conversions.yaml")
	if err != nil {
		t.Fatalf("failed to read conversions.yaml: %v", err)
	}

	var file conversionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("failed to parse conversions.yaml: %v", err)
	}

	for _, tc := range file.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			src := kindByName(tc.SrcKind)
			dest := kindByName(tc.DestKind)
			expr := constExprFor(src, tc.ConstValue)

			result, err := MakeCast(expr, dest)

			if tc.Fold == "error" {
				if err == nil {
					t.Fatalf("expected an error, got result %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch tc.Fold {
			case "long":
				got, ok := result.(texpr.ConstLong)
				if !ok {
					t.Fatalf("expected ConstLong, got %T", result)
				}
				if int64(got.Value) != tc.FoldValue {
					t.Errorf("got %d, want %d", got.Value, tc.FoldValue)
				}
			case "ulong":
				got, ok := result.(texpr.ConstULong)
				if !ok {
					t.Fatalf("expected ConstULong, got %T", result)
				}
				if int64(got.Value) != tc.FoldValue {
					t.Errorf("got %d, want %d", got.Value, tc.FoldValue)
				}
			case "float":
				got, ok := result.(texpr.ConstFloat)
				if !ok {
					t.Fatalf("expected ConstFloat, got %T", result)
				}
				if float64(got.Value) != float64(tc.FoldValue) {
					t.Errorf("got %v, want %v", got.Value, tc.FoldValue)
				}
			case "double":
				got, ok := result.(texpr.ConstDouble)
				if !ok {
					t.Fatalf("expected ConstDouble, got %T", result)
				}
				if got.Value != float64(tc.FoldValue) {
					t.Errorf("got %v, want %v", got.Value, tc.FoldValue)
				}
			}
		})
	}
}

// TestTotalityOnArithmeticCrossProduct implements spec property 2: MakeCast
// succeeds for every ordered (src, dst) pair drawn from the eight
// arithmetic kinds on a non-constant operand, except (FLOAT, UCHAR).
func TestTotalityOnArithmeticCrossProduct(t *testing.T) {
	kinds := []string{"char", "uchar", "short", "ushort", "long", "ulong", "float", "double"}
	for _, srcName := range kinds {
		for _, destName := range kinds {
			src := kindByName(srcName)
			dest := kindByName(destName)
			name := srcName + "_to_" + destName
			t.Run(name, func(t *testing.T) {
				v := texpr.Var{Name: "x", Typ: src, E: semenv.Global}
				_, err := MakeCast(v, dest)
				if srcName == "float" && destName == "uchar" {
					if err == nil {
						t.Fatal("expected FLOAT -> UCHAR to fail")
					}
					return
				}
				if err != nil {
					t.Fatalf("MakeCast(%s, %s) failed: %v", srcName, destName, err)
				}
			})
		}
	}
}
