// Command anccast is a small demo CLI over the semantic core's conversion
// engine: it builds a constant expression of a given source kind and value,
// runs it through MakeCast to a destination kind, and prints the folded
// result or the cast-primitive chain that would be emitted for a
// non-constant operand of the same kinds.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ancc-project/ancc/pkg/convert"
	"github.com/ancc-project/ancc/pkg/ctypes"
	"github.com/ancc-project/ancc/pkg/semenv"
	"github.com/ancc-project/ancc/pkg/texpr"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	fromKind string
	toKind   string
	value    int64
	nonConst bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anccast",
		Short: "anccast demonstrates the ANSI C semantic core's cast engine",
		Long: `anccast is a small demo CLI over the semantic type core: it converts
a constant (or, with --non-const, a placeholder variable) of one arithmetic
kind to another and prints the resulting expression tree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCast(out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&fromKind, "from", "long", "source kind (char, uchar, short, ushort, long, ulong, float, double)")
	rootCmd.Flags().StringVar(&toKind, "to", "char", "destination kind")
	rootCmd.Flags().Int64Var(&value, "value", 0, "constant value to convert (ignored with --non-const)")
	rootCmd.Flags().BoolVar(&nonConst, "non-const", false, "convert a placeholder variable instead of a constant")

	return rootCmd
}

func kindByName(name string) (ctypes.Type, error) {
	switch name {
	case "char":
		return ctypes.TChar(), nil
	case "uchar":
		return ctypes.TUChar(), nil
	case "short":
		return ctypes.TShort(), nil
	case "ushort":
		return ctypes.TUShort(), nil
	case "long":
		return ctypes.TLong(), nil
	case "ulong":
		return ctypes.TULong(), nil
	case "float":
		return ctypes.TFloat(), nil
	case "double":
		return ctypes.TDouble(), nil
	default:
		return ctypes.Type{}, fmt.Errorf("unknown kind %q", name)
	}
}

func constExprFor(kind ctypes.Type, v int64) texpr.Expr {
	switch kind.Kind {
	case ctypes.Char, ctypes.Short, ctypes.Long:
		return texpr.ConstLong{Value: int32(v), Typ: kind, E: semenv.Global}
	case ctypes.UChar, ctypes.UShort, ctypes.ULong:
		return texpr.ConstULong{Value: uint32(v), Typ: kind, E: semenv.Global}
	case ctypes.Float:
		return texpr.ConstFloat{Value: float32(v), E: semenv.Global}
	default:
		return texpr.ConstDouble{Value: float64(v), E: semenv.Global}
	}
}

func doCast(out, errOut io.Writer) error {
	src, err := kindByName(fromKind)
	if err != nil {
		return err
	}
	dest, err := kindByName(toKind)
	if err != nil {
		return err
	}

	var expr texpr.Expr
	if nonConst {
		expr = texpr.Var{Name: "x", Typ: src, E: semenv.Global}
	} else {
		expr = constExprFor(src, value)
	}

	result, err := convert.MakeCast(expr, dest)
	if err != nil {
		fmt.Fprintf(errOut, "anccast: %v\n", err)
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}
