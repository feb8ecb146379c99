package scenario

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/gauge/internal/measure"
)

// CompileError is a scenario compilation error with CUE position info
// when available.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Compile parses a CUE value into a Scenario. The value should be the
// root of a scenario file (see the package documentation for the
// expected shape).
func Compile(v cue.Value) (*Scenario, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	s := &Scenario{}

	meta := v.LookupPath(cue.ParsePath("scenario"))
	if meta.Exists() {
		if name := meta.LookupPath(cue.ParsePath("name")); name.Exists() {
			str, err := name.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			s.Name = str
		}
		if desc := meta.LookupPath(cue.ParsePath("description")); desc.Exists() {
			str, err := desc.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			s.Description = str
		}
	}

	quantities := v.LookupPath(cue.ParsePath("quantity"))
	if quantities.Exists() {
		iter, err := quantities.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			def, err := compileQuantity(iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			s.Quantities = append(s.Quantities, def)
		}
	}
	if len(s.Quantities) == 0 {
		return nil, &CompileError{
			Field:   "quantity",
			Message: "at least one quantity is required",
			Pos:     v.Pos(),
		}
	}

	results := v.LookupPath(cue.ParsePath("result"))
	if results.Exists() {
		iter, err := results.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			def, err := compileResult(iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			s.Results = append(s.Results, def)
		}
	}

	return s, nil
}

// compileQuantity parses one named quantity declaration. Exactly one of
// the three sources must be present: observations, lower/upper bounds,
// or a value (with optional uncertainty).
func compileQuantity(name string, v cue.Value) (QuantityDef, error) {
	def := QuantityDef{Name: name}

	var err error
	def.Unit, def.Precision, def.HasPrecision, err = compileRendering(name, v)
	if err != nil {
		return def, err
	}

	obs := v.LookupPath(cue.ParsePath("observations"))
	lower := v.LookupPath(cue.ParsePath("lower"))
	value := v.LookupPath(cue.ParsePath("value"))

	declared := 0
	for _, present := range []bool{obs.Exists(), lower.Exists(), value.Exists()} {
		if present {
			declared++
		}
	}
	if declared != 1 {
		return def, &CompileError{
			Field:   "quantity." + name,
			Message: "exactly one of value, observations, or lower/upper is required",
			Pos:     v.Pos(),
		}
	}

	switch {
	case obs.Exists():
		values, err := compileFloatList(name, obs)
		if err != nil {
			return def, err
		}
		if len(values) == 0 {
			return def, &CompileError{
				Field:   "quantity." + name,
				Message: "observations must be non-empty",
				Pos:     obs.Pos(),
			}
		}
		def.Source = Observations{Values: values}

	case lower.Exists():
		lo, err := lower.Float64()
		if err != nil {
			return def, formatCUEError(err)
		}
		upper := v.LookupPath(cue.ParsePath("upper"))
		if !upper.Exists() {
			return def, &CompileError{
				Field:   "quantity." + name,
				Message: "upper is required with lower",
				Pos:     v.Pos(),
			}
		}
		hi, err := upper.Float64()
		if err != nil {
			return def, formatCUEError(err)
		}
		dist := "R"
		if d := v.LookupPath(cue.ParsePath("distribution")); d.Exists() {
			dist, err = d.String()
			if err != nil {
				return def, formatCUEError(err)
			}
		}
		def.Source = Bounds{Lower: lo, Upper: hi, Distribution: measure.Distribution(dist)}

	default:
		val, err := value.Float64()
		if err != nil {
			return def, formatCUEError(err)
		}
		u := 0.0
		if uv := v.LookupPath(cue.ParsePath("uncertainty")); uv.Exists() {
			u, err = uv.Float64()
			if err != nil {
				return def, formatCUEError(err)
			}
		}
		def.Source = Pair{Value: val, Uncertainty: u}
	}

	return def, nil
}

// compileResult parses one named result declaration.
func compileResult(name string, v cue.Value) (ResultDef, error) {
	def := ResultDef{Name: name}

	var err error
	def.Unit, def.Precision, def.HasPrecision, err = compileRendering(name, v)
	if err != nil {
		return def, err
	}

	required := []struct {
		field string
		dst   *string
	}{
		{"op", &def.Op},
		{"left", &def.Left},
		{"right", &def.Right},
	}
	for _, r := range required {
		fv := v.LookupPath(cue.ParsePath(r.field))
		if !fv.Exists() {
			return def, &CompileError{
				Field:   "result." + name,
				Message: r.field + " is required",
				Pos:     v.Pos(),
			}
		}
		*r.dst, err = fv.String()
		if err != nil {
			return def, formatCUEError(err)
		}
	}

	switch def.Op {
	case "add", "sub", "mul", "div":
	default:
		return def, &CompileError{
			Field:   "result." + name,
			Message: fmt.Sprintf("unknown op %q: must be add, sub, mul or div", def.Op),
			Pos:     v.Pos(),
		}
	}

	return def, nil
}

// compileRendering parses the optional unit and precision fields shared
// by quantity and result declarations.
func compileRendering(name string, v cue.Value) (unit string, precision int, hasPrecision bool, err error) {
	if uv := v.LookupPath(cue.ParsePath("unit")); uv.Exists() {
		unit, err = uv.String()
		if err != nil {
			return "", 0, false, formatCUEError(err)
		}
	}
	if pv := v.LookupPath(cue.ParsePath("precision")); pv.Exists() {
		p, err := pv.Int64()
		if err != nil {
			return "", 0, false, formatCUEError(err)
		}
		if p < 0 {
			return "", 0, false, &CompileError{
				Field:   name,
				Message: "precision must be non-negative",
				Pos:     pv.Pos(),
			}
		}
		precision, hasPrecision = int(p), true
	}
	return unit, precision, hasPrecision, nil
}

// compileFloatList parses a CUE list of numbers.
func compileFloatList(name string, v cue.Value) ([]float64, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var values []float64
	for iter.Next() {
		f, err := iter.Value().Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		values = append(values, f)
	}
	return values, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return &CompileError{
		Field:   "cue",
		Message: firstErr.Error(),
	}
}
