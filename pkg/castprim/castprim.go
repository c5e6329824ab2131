// Package castprim defines the closed set of value-domain cast primitives
// the code generator can emit directly (spec.md §4.2). Every legal C
// conversion the conversion engine produces decomposes into a sequence of
// these; no other primitive exists.
package castprim

// Primitive is one low-level value-domain transformation.
type Primitive int

const (
	NOP Primitive = iota
	INT8_TO_INT16
	INT8_TO_INT32
	INT16_TO_INT32
	UINT8_TO_UINT16
	UINT8_TO_UINT32
	UINT16_TO_UINT32
	PRESERVE_INT8
	PRESERVE_INT16
	INT32_TO_FLOAT
	INT32_TO_DOUBLE
	FLOAT_TO_INT32
	DOUBLE_TO_INT32
	FLOAT_TO_DOUBLE
	DOUBLE_TO_FLOAT
)

func (p Primitive) String() string {
	names := []string{
		"NOP",
		"INT8_TO_INT16", "INT8_TO_INT32", "INT16_TO_INT32",
		"UINT8_TO_UINT16", "UINT8_TO_UINT32", "UINT16_TO_UINT32",
		"PRESERVE_INT8", "PRESERVE_INT16",
		"INT32_TO_FLOAT", "INT32_TO_DOUBLE",
		"FLOAT_TO_INT32", "DOUBLE_TO_INT32",
		"FLOAT_TO_DOUBLE", "DOUBLE_TO_FLOAT",
	}
	if int(p) < len(names) {
		return names[p]
	}
	return "?"
}

// Domain is the machine register domain a value lives in: the integer
// general-purpose register file, or the top of the FPU stack.
type Domain int

const (
	GPR Domain = iota
	FPUTop
)

func (d Domain) String() string {
	if d == FPUTop {
		return "FPUTop"
	}
	return "GPR"
}

// SourceDomain and DestDomain report the register domain a primitive reads
// from and writes to, encoded implicitly by the primitive's name in
// spec.md §4.2's table.
func (p Primitive) SourceDomain() Domain {
	switch p {
	case FLOAT_TO_INT32, DOUBLE_TO_INT32, FLOAT_TO_DOUBLE, DOUBLE_TO_FLOAT:
		return FPUTop
	default:
		return GPR
	}
}

func (p Primitive) DestDomain() Domain {
	switch p {
	case INT32_TO_FLOAT, INT32_TO_DOUBLE, FLOAT_TO_DOUBLE, DOUBLE_TO_FLOAT:
		return FPUTop
	default:
		return GPR
	}
}
