// Package emit defines the narrow interface through which a cast primitive
// asks the assembly emitter to realize sign/zero extension or FPU
// conversion (spec.md §4.5). It is specified as a contract here, not
// implemented: the actual x86 assembler lives outside this module's scope
// and is referenced only through Emitter.
package emit

import "github.com/ancc-project/ancc/pkg/castprim"

// Emitter is the assembler-facing contract the cast core depends on.
// NOP and the two PRESERVE_* primitives never call it: they are pure
// retyping/reinterpretation with no instruction to emit.
type Emitter interface {
	// MOVSBL sign-extends a byte to a 32-bit GPR (INT8_TO_INT16,
	// INT8_TO_INT32).
	MOVSBL()
	// MOVSWL sign-extends a word to a 32-bit GPR (INT16_TO_INT32).
	MOVSWL()
	// MOVZBL zero-extends a byte to a 32-bit GPR (UINT8_TO_UINT16,
	// UINT8_TO_UINT32).
	MOVZBL()
	// MOVZWL zero-extends a word to a 32-bit GPR (UINT16_TO_UINT32).
	MOVZWL()
	// CGenConvertLongToFloat pushes a GPR value onto the FPU stack,
	// converting it to float or double (INT32_TO_FLOAT, INT32_TO_DOUBLE).
	CGenConvertLongToFloat()
	// CGenConvertFloatToLong pops the FPU stack into a GPR
	// (FLOAT_TO_INT32, DOUBLE_TO_INT32).
	CGenConvertFloatToLong()
}

// Apply emits the instruction(s) realizing p and returns the machine
// register domain holding the result. NOP and the PRESERVE_* primitives
// emit nothing; the source register already holds a value usable as-is
// under the new type.
func Apply(e Emitter, p castprim.Primitive) castprim.Domain {
	switch p {
	case castprim.NOP, castprim.PRESERVE_INT8, castprim.PRESERVE_INT16:
		// retype only
	case castprim.INT8_TO_INT16, castprim.INT8_TO_INT32:
		e.MOVSBL()
	case castprim.INT16_TO_INT32:
		e.MOVSWL()
	case castprim.UINT8_TO_UINT16, castprim.UINT8_TO_UINT32:
		e.MOVZBL()
	case castprim.UINT16_TO_UINT32:
		e.MOVZWL()
	case castprim.INT32_TO_FLOAT, castprim.INT32_TO_DOUBLE:
		e.CGenConvertLongToFloat()
	case castprim.FLOAT_TO_INT32, castprim.DOUBLE_TO_INT32:
		e.CGenConvertFloatToLong()
	case castprim.FLOAT_TO_DOUBLE, castprim.DOUBLE_TO_FLOAT:
		// handled entirely on the FPU stack by the caller's FPU-conversion
		// instruction selection; no GPR<->FPU crossing primitive applies.
	default:
		panic("emit: unhandled cast primitive " + p.String())
	}
	return p.DestDomain()
}
