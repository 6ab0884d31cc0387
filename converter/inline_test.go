package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertEmphasis(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strong", input: "<p>a <strong>b</strong> c</p>", want: "a **b** c\n"},
		{name: "bold alias", input: "<p><b>x</b></p>", want: "**x**\n"},
		{name: "em", input: "<p><em>x</em></p>", want: "*x*\n"},
		{name: "italic alias", input: "<p><i>x</i></p>", want: "*x*\n"},
		{name: "del", input: "<p><del>x</del></p>", want: "~~x~~\n"},
		{name: "strike alias", input: "<p><s>x</s></p>", want: "~~x~~\n"},
		{name: "nested", input: "<p><strong><em>x</em></strong></p>", want: "***x***\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, convert(t, Config{}, tc.input).Markdown)
		})
	}
}

func TestConvertEmphasisBoundaryWhitespaceMovesOutside(t *testing.T) {
	result := convert(t, Config{}, "<p>a<strong> b </strong>c</p>")
	assert.Equal(t, "a **b** c\n", result.Markdown)
}

func TestConvertEmptyEmphasisSuppressed(t *testing.T) {
	result := convert(t, Config{}, "<p><em>   </em>b</p>")
	assert.Equal(t, "b\n", result.Markdown)
}

func TestConvertInlineCode(t *testing.T) {
	result := convert(t, Config{}, "<p>Use <code>a*b</code> now</p>")
	assert.Equal(t, "Use `a*b` now\n", result.Markdown)
}

func TestConvertInlineCodeEscapesBackticks(t *testing.T) {
	result := convert(t, Config{}, "<p><code>a`b</code></p>")
	assert.Equal(t, "`a\\`b`\n", result.Markdown)
}

func TestConvertEmptyInlineCodeSuppressed(t *testing.T) {
	result := convert(t, Config{}, "<p>x<code>  </code>y</p>")
	assert.Equal(t, "xy\n", result.Markdown)
}

func TestConvertLink(t *testing.T) {
	result := convert(t, Config{}, `<p><a href="https://example.com">Click</a></p>`)
	assert.Equal(t, "[Click](https://example.com)\n", result.Markdown)
}

func TestConvertLinkWithTitle(t *testing.T) {
	result := convert(t, Config{}, `<p><a href="/a" title="say &quot;hi&quot;">t</a></p>`)
	assert.Equal(t, "[t](/a \"say \\\"hi\\\"\")\n", result.Markdown)
}

func TestConvertLinkTextEscaped(t *testing.T) {
	result := convert(t, Config{}, `<p><a href="/a">a*b</a></p>`)
	assert.Equal(t, `[a\*b](/a)`+"\n", result.Markdown)
}

func TestConvertLinkEmptyTextUsesHref(t *testing.T) {
	result := convert(t, Config{}, `<p><a href="https://example.com/a_b"></a></p>`)
	assert.Equal(t, `[https://example\.com/a\_b](https://example.com/a_b)`+"\n", result.Markdown)
}

func TestConvertLinkWithoutHrefKeepsText(t *testing.T) {
	result := convert(t, Config{}, "<p><a>just text</a></p>")
	assert.Equal(t, "just text\n", result.Markdown)
	assert.Empty(t, result.Warnings)
}

func TestConvertLinkURLEscaped(t *testing.T) {
	result := convert(t, Config{}, `<p><a href="https://en.wikipedia.org/wiki/Go_(game)">Go</a></p>`)
	assert.Equal(t, "[Go](https://en.wikipedia.org/wiki/Go_%28game%29)\n", result.Markdown)
}

func TestConvertImage(t *testing.T) {
	result := convert(t, Config{}, `<p><img src="/i.png" alt="A chart"></p>`)
	assert.Equal(t, "![A chart](/i.png)\n", result.Markdown)
}

func TestConvertImageLazyLoadFallback(t *testing.T) {
	result := convert(t, Config{}, `<p><img data-src="/lazy.png" alt="x"></p>`)
	assert.Equal(t, "![x](/lazy.png)\n", result.Markdown)

	result = convert(t, Config{}, `<p><img data-original="/orig.png" alt="x"></p>`)
	assert.Equal(t, "![x](/orig.png)\n", result.Markdown)
}

func TestConvertImageWithTitle(t *testing.T) {
	result := convert(t, Config{}, `<p><img src="/i.png" alt="a" title="t"></p>`)
	assert.Equal(t, "![a](/i.png \"t\")\n", result.Markdown)
}

func TestConvertImageDataURLDropped(t *testing.T) {
	result := convert(t, Config{}, `<p>before <img src="data:image/png;base64,iVBOR" alt="x">after</p>`)
	assert.Equal(t, "before after\n", result.Markdown)
	if assert.Len(t, result.Warnings, 1) {
		assert.Equal(t, WarningBlockedURL, result.Warnings[0].Type)
		assert.Equal(t, "img", result.Warnings[0].Tag)
	}
}

func TestConvertImageWithoutSourceDropped(t *testing.T) {
	result := convert(t, Config{}, `<p>a <img alt="x">b</p>`)
	assert.Equal(t, "a b\n", result.Markdown)
	assert.Empty(t, result.Warnings)
}

func TestConvertHardBreak(t *testing.T) {
	result := convert(t, Config{}, "<p>line one<br>line two</p>")
	assert.Equal(t, "line one  \nline two\n", result.Markdown)
}
