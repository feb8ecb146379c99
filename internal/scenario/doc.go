// Package scenario compiles and evaluates measurement scenarios
// written in CUE.
//
// A scenario file declares named quantities and named results. Each
// quantity is defined by exactly one of three sources: a (value,
// uncertainty) pair, a list of repeated observations, or distribution
// bounds for a Type B evaluation. Each result applies a binary operator
// to two previously defined operands:
//
//	scenario: {
//		name:        "bar_area"
//		description: "cross-section area of the measured bar"
//	}
//
//	quantity: {
//		length: {value: 12.5, uncertainty: 0.2, unit: "mm"}
//		width: {observations: [4.1, 4.3, 4.2], unit: "mm"}
//		temp: {lower: 19.0, upper: 21.0, distribution: "R"}
//	}
//
//	result: {
//		area: {op: "mul", left: "length", right: "width", unit: "mm", precision: 2}
//	}
//
// Results are evaluated in declaration order and may reference earlier
// results as operands. Compilation uses the CUE Go API directly; errors
// carry CUE source positions where available.
package scenario
