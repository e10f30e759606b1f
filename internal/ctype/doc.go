// Package ctype implements Culebra's static value-type lattice: the
// closed sum of types the type checker assigns to expressions and the IR
// emitter uses to pick instruction encodings.
package ctype
