package scenario

import (
	"fmt"

	"github.com/roach88/gauge/internal/measure"
)

// Evaluation is one evaluated scenario entry: the quantity plus its
// rendered form under the declaration's unit and precision.
type Evaluation struct {
	Name     string
	Quantity measure.Quantity
	Rendered string
}

// EvalError reports a failure while evaluating a compiled scenario,
// such as a result referencing an undefined operand.
type EvalError struct {
	Result  string
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("result %s: %s", e.Result, e.Message)
}

// Evaluate builds every quantity, applies every result in declaration
// order, and returns the evaluations (quantities first, then results,
// each in declaration order).
func (s *Scenario) Evaluate() ([]Evaluation, error) {
	env := make(map[string]measure.Quantity, len(s.Quantities)+len(s.Results))
	evals := make([]Evaluation, 0, len(s.Quantities)+len(s.Results))

	for _, def := range s.Quantities {
		q := def.Build()
		env[def.Name] = q
		evals = append(evals, Evaluation{
			Name:     def.Name,
			Quantity: q,
			Rendered: q.Format(def.FormatSpec()),
		})
	}

	for _, def := range s.Results {
		left, ok := env[def.Left]
		if !ok {
			return nil, &EvalError{Result: def.Name, Message: fmt.Sprintf("unknown operand %q", def.Left)}
		}
		right, ok := env[def.Right]
		if !ok {
			return nil, &EvalError{Result: def.Name, Message: fmt.Sprintf("unknown operand %q", def.Right)}
		}

		var q measure.Quantity
		switch def.Op {
		case "add":
			q = left.Add(right)
		case "sub":
			q = left.Sub(right)
		case "mul":
			q = left.Mul(right)
		case "div":
			q = left.Div(right)
		default:
			// Compile rejects unknown ops; reachable only for
			// hand-built scenarios.
			return nil, &EvalError{Result: def.Name, Message: fmt.Sprintf("unknown op %q", def.Op)}
		}

		env[def.Name] = q
		evals = append(evals, Evaluation{
			Name:     def.Name,
			Quantity: q,
			Rendered: q.Format(def.FormatSpec()),
		})
	}

	return evals, nil
}
