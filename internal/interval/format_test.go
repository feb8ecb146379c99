package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestStringBounded(t *testing.T) {
	assert.Equal(t, "[1.5 , 2.5]", New(1.5, 2.5).String())
	assert.Equal(t, "[3 , 3]", Point(3).String())
}

func TestStringEmpty(t *testing.T) {
	assert.Equal(t, "[empty]", Empty().String())
}

func TestFormatInLocale(t *testing.T) {
	i := New(1234.5, 2500.75)
	assert.Equal(t, "[1,234.5 , 2,500.75]", i.FormatIn(language.English))
	assert.Equal(t, "[1.234,5 , 2.500,75]", i.FormatIn(language.German))
}
