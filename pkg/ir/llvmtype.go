package ir

import "github.com/cnexans/culebra/internal/ctype"

// llvmType renders a Culebra type as the LLVM IR type used to carry it.
// Arrays are always represented as %array* regardless of element type -
// the runtime array is untyped storage, element width is fixed at 8
// bytes (the second argument of the culebra_create_array call in
// visitArrayLiteral).
func llvmType(t ctype.Type) string {
	switch t.Kind {
	case ctype.Int:
		return "i64"
	case ctype.Float:
		return "double"
	case ctype.Bool:
		return "i1"
	case ctype.String:
		return "i8*"
	case ctype.Array:
		return "%array*"
	default:
		return "i64"
	}
}

// binaryResultType mirrors the checker's arithmetic/comparison/logical
// type rules at the IR layer: comparisons and logical operators always
// produce BOOL, float is sticky once either operand is float, string
// concatenation produces STRING, everything else defaults to INT.
func binaryResultType(op string, left, right ctype.Type) ctype.Type {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=", "and", "or":
		return ctype.TBool
	}
	if left.Kind == ctype.Float || right.Kind == ctype.Float {
		return ctype.TFloat
	}
	if op == "+" && (left.Kind == ctype.String || right.Kind == ctype.String) {
		return ctype.TString
	}

	return ctype.TInt
}
