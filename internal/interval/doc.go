// Package interval implements closed real intervals under interval
// arithmetic.
//
// An Interval is either Bounded — a closed range [a, b] with a <= b —
// or Empty, the sentinel for "no valid interval". Every operator is a
// transition Bounded×Bounded→{Empty, Bounded} or Empty×anything→Empty:
// once a computation produces Empty there is no way back except fresh
// construction, so invalidity flows forward as a value and can be
// tested once at the end of a chain instead of at every step.
//
// Operators derive exact worst-case endpoints under the usual
// independence caveat of interval arithmetic: a variable that appears
// more than once in an expression widens the result beyond its true
// range (the dependency problem). The package does no directed
// rounding; results are not guaranteed enclosures under floating-point
// rounding.
//
// Domain violations never panic or error. Division by an interval whose
// interior contains zero, and elementary functions applied outside
// their admissible domain, all yield Empty.
package interval
