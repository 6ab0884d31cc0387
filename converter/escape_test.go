package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: `a*b`, want: `a\*b`},
		{in: `_emphasis_`, want: `\_emphasis\_`},
		{in: `[link]`, want: `\[link\]`},
		{in: `(paren)`, want: `\(paren\)`},
		{in: `#hash`, want: `\#hash`},
		{in: `1+1`, want: `1\+1`},
		{in: `a-b`, want: `a\-b`},
		{in: `end.`, want: `end\.`},
		{in: `wow!`, want: `wow\!`},
		{in: `{brace}`, want: `\{brace\}`},
		{in: `back\slash`, want: `back\\slash`},
		{in: "tick`mark", want: "tick\\`mark"},
		{in: `plain text`, want: `plain text`},
		{in: `*_[]()#+-.!`, want: `\*\_\[\]\(\)\#\+\-\.\!`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeText(tc.in), "input %q", tc.in)
	}
}

func TestEscapeTextBackslashFirst(t *testing.T) {
	// A backslash followed by a special must not double-escape the special.
	assert.Equal(t, `\\\*`, EscapeText(`\*`))
}

func TestEscapeCodeSpan(t *testing.T) {
	assert.Equal(t, "x \\` y", escapeCodeSpan("x ` y"))
	assert.Equal(t, "a*b_c", escapeCodeSpan("a*b_c"))
}

func TestEscapeTitle(t *testing.T) {
	assert.Equal(t, `say \"hi\"`, escapeTitle(`say "hi"`))
	assert.Equal(t, `a\\b`, escapeTitle(`a\b`))
	assert.Equal(t, `plain`, escapeTitle(`plain`))
}
