package interval

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EmptyLiteral is the fixed rendering of the Empty sentinel.
const EmptyLiteral = "[empty]"

// FormatIn renders the interval as "[a , b]" with each bound formatted
// under the numeric conventions of the given locale. Empty renders as
// EmptyLiteral.
func (i Interval) FormatIn(tag language.Tag) string {
	if i.IsEmpty() {
		return EmptyLiteral
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("[%v , %v]", i.lower, i.upper)
}

// String renders the interval using English numeric conventions.
func (i Interval) String() string {
	return i.FormatIn(language.English)
}
