// Package measure implements measured quantities with propagated
// standard uncertainty.
//
// A Quantity is an immutable value x with an associated standard
// uncertainty u >= 0. Arithmetic combines uncertainties by first-order
// Taylor propagation per the GUM (Guide to the Expression of
// Uncertainty in Measurement): each operator's result uncertainty is
// the root sum square of the partial-derivative contributions of its
// operands.
//
// INDEPENDENCE ASSUMPTION:
//
// Propagation assumes the two operands of every binary operator are
// independent. A quantity that appears more than once in an expression
// is treated as independent on each occurrence, which overstates or
// understates the combined uncertainty. The package does not track
// correlations; callers who need exact results for repeated variables
// must algebraically simplify the expression first.
//
// EQUIVALENCE IS NOT EQUALITY:
//
// IsEquivalent tests metrological compatibility: two quantities are
// equivalent when their difference is within k times the uncertainty of
// that difference (k = DefaultCoverageFactor unless given explicitly).
// The relation is reflexive and symmetric but NOT transitive, so it
// must never stand in for equality. Do not key maps on equivalence;
// Go's == on Quantity remains ordinary transitive structural equality
// and is kept separate deliberately.
//
// ORDERING AND THE TRICHOTOMY BREAK:
//
// Less and Greater treat equivalent quantities as neither less nor
// greater, while LessEq and GreaterEq treat them as equal. For two
// equivalent quantities with different central values, Less, Greater
// and strict value equality can therefore all be false at once. This
// break of trichotomy is intentional; Compare provides a strict total
// order on central values alone for callers that need one.
package measure
