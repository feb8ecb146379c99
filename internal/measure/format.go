package measure

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoUnit is the format-specifier unit sentinel meaning "render without
// a unit".
const NoUnit = "G"

// attachedUnits are appended directly to the number with no separating
// space, following typographic convention for angle notation.
var attachedUnits = map[string]bool{
	"°": true, // degree
	"′": true, // arcminute
	"″": true, // arcsecond
}

// Format renders the quantity as "(value unit ± uncertainty unit)"
// using English numeric conventions. The specifier has the shape
// "[unit].[precision]":
//
//   - unit is appended to both numbers, preceded by a space unless it
//     is one of the angle symbols (°, ′, ″), which attach directly.
//     The sentinel "G" (or an empty unit) means no unit.
//   - precision, when a non-negative integer, selects fixed-point
//     rendering with that many fraction digits. Any other precision
//     token silently falls back to general formatting.
//
// For example, (3.14159 ± 0.002) with specifier "mm.2" renders as
// "(3.14 mm ± 0.00 mm)".
func (q Quantity) Format(spec string) string {
	return q.FormatIn(language.English, spec)
}

// FormatIn is Format with an explicit locale for the numeric
// conventions (decimal separator, digit grouping) of both numbers.
func (q Quantity) FormatIn(tag language.Tag, spec string) string {
	unit, precision, fixed := parseFormatSpec(spec)
	p := message.NewPrinter(tag)

	var b strings.Builder
	b.WriteString("(")
	writeNumber(&b, p, q.value, precision, fixed, unit)
	b.WriteString(" ± ")
	writeNumber(&b, p, q.uncertainty, precision, fixed, unit)
	b.WriteString(")")
	return b.String()
}

// String renders the quantity with general formatting and no unit.
func (q Quantity) String() string {
	return q.Format(NoUnit)
}

// parseFormatSpec splits "[unit].[precision]" at the last dot. fixed
// reports whether the precision token parsed as a non-negative integer;
// otherwise general formatting applies.
func parseFormatSpec(spec string) (unit string, precision int, fixed bool) {
	unit = spec
	if i := strings.LastIndex(spec, "."); i >= 0 {
		unit = spec[:i]
		tok := spec[i+1:]
		if p, err := strconv.Atoi(tok); err == nil && p >= 0 {
			precision, fixed = p, true
		}
	}
	if unit == NoUnit {
		unit = ""
	}
	return unit, precision, fixed
}

func writeNumber(b *strings.Builder, p *message.Printer, v float64, precision int, fixed bool, unit string) {
	if fixed {
		b.WriteString(p.Sprintf("%."+strconv.Itoa(precision)+"f", v))
	} else {
		b.WriteString(p.Sprintf("%v", v))
	}
	if unit == "" {
		return
	}
	if !attachedUnits[unit] {
		b.WriteString(" ")
	}
	b.WriteString(unit)
}
