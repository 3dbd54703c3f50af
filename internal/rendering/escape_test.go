package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeMarkdown(""))
}

func TestEscapeMarkdown_NoSpecialCharacters(t *testing.T) {
	text := "Quantum mechanics (physics)"
	assert.Equal(t, text, EscapeMarkdown(text))
}

func TestEscapeMarkdown_SpecialCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a*b", want: `a\*b`},
		{in: "snake_case", want: `snake\_case`},
		{in: "~strike~", want: `\~strike\~`},
		{in: "`code`", want: "\\`code\\`"},
		{in: "a|b", want: `a\|b`},
		{in: "[link]", want: `\[link\]`},
		{in: "> quote", want: `\> quote`},
		{in: "#1", want: `\#1`},
		{in: `back\slash`, want: `back\\slash`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeMarkdown(tt.in))
		})
	}
}

func TestEscapeMarkdown_Unicode(t *testing.T) {
	assert.Equal(t, `Gödel\_number`, EscapeMarkdown("Gödel_number"))
}

func TestEscapeURL(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/wiki/Mercury_%28planet%29", escapeURL("https://en.wikipedia.org/wiki/Mercury_(planet)"))
}
