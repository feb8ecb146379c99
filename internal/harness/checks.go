package harness

import (
	"fmt"

	"github.com/roach88/gauge/internal/interval"
	"github.com/roach88/gauge/internal/measure"
)

// applyCheck validates one check against the evaluated quantities,
// recording any violation on the result.
func applyCheck(r *Result, index int, c *Check, env map[string]measure.Quantity) {
	switch c.Type {
	case CheckEquivalent, CheckDistinct, CheckLess:
		left, ok := env[c.Left]
		if !ok {
			r.AddError(fmt.Sprintf("checks[%d]: unknown quantity %q", index, c.Left))
			return
		}
		right, ok := env[c.Right]
		if !ok {
			r.AddError(fmt.Sprintf("checks[%d]: unknown quantity %q", index, c.Right))
			return
		}
		applyRelation(r, index, c, left, right)

	case CheckRendered:
		// The rendered form follows the declaration's unit and
		// precision, so the check compares against the trace entry.
		got, ok := renderedIn(r, c.Name)
		if !ok {
			r.AddError(fmt.Sprintf("checks[%d]: unknown quantity %q", index, c.Name))
			return
		}
		if got != c.Expect {
			r.AddError(fmt.Sprintf("checks[%d]: %s rendered as %q, expected %q", index, c.Name, got, c.Expect))
		}

	case CheckBounds:
		q, ok := env[c.Name]
		if !ok {
			r.AddError(fmt.Sprintf("checks[%d]: unknown quantity %q", index, c.Name))
			return
		}
		iv := interval.New(*c.Lower, *c.Upper)
		lo, hi, _ := iv.Bounds()
		if v := q.Value(); v < lo || v > hi {
			r.AddError(fmt.Sprintf("checks[%d]: %s = %v outside %s", index, c.Name, v, iv))
		}
	}
}

// applyRelation validates the three two-operand check types.
func applyRelation(r *Result, index int, c *Check, left, right measure.Quantity) {
	k := c.Coverage
	if k == 0 {
		k = measure.DefaultCoverageFactor
	}

	switch c.Type {
	case CheckEquivalent:
		if !measure.IsEquivalentWithin(left, right, k) {
			r.AddError(fmt.Sprintf("checks[%d]: %s and %s are not equivalent at coverage %v (En = %v)",
				index, c.Left, c.Right, k, measure.En(left, right)))
		}
	case CheckDistinct:
		if measure.IsEquivalentWithin(left, right, k) {
			r.AddError(fmt.Sprintf("checks[%d]: %s and %s are equivalent at coverage %v, expected distinct",
				index, c.Left, c.Right, k))
		}
	case CheckLess:
		if !left.Less(right) {
			r.AddError(fmt.Sprintf("checks[%d]: expected %s < %s", index, c.Left, c.Right))
		}
	}
}

// renderedIn looks up the trace entry's rendered form by name.
func renderedIn(r *Result, name string) (string, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Rendered, true
		}
	}
	return "", false
}
