package convert

import "errors"

// Error kinds raised by the conversion engine (spec.md §7). All are fatal
// at the callsite: the engine never silently patches a bad conversion,
// never retries, and never loses precision without emitting a primitive
// that reifies the loss.
var (
	// ErrUnsupportedSource is returned when MakeCast is invoked with a
	// source kind that is never convertible (VOID, ARRAY,
	// INCOMPLETE_ARRAY, FUNCTION other than to pointer, STRUCT_OR_UNION).
	ErrUnsupportedSource = errors.New("unsupported source type for cast")

	// ErrUnsupportedConversion is returned for a (source, destination)
	// pair with no defined mapping, e.g. FLOAT → UCHAR.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrIncompatibleFunctionPointer is returned when casting a function
	// to a pointer type whose referent does not match the function's own
	// type.
	ErrIncompatibleFunctionPointer = errors.New("incompatible function pointer cast")

	// ErrNonIntegralPromotion is returned when IntegralPromotion is
	// called on a non-integral expression.
	ErrNonIntegralPromotion = errors.New("integral promotion on non-integral expression")
)
