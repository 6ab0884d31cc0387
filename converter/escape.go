package converter

import "strings"

// markdownEscaper prefixes Markdown-significant characters with a backslash.
// Replacer works in a single pass, so inserted backslashes are never
// re-escaped by later pairs.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`.`, `\.`,
	`!`, `\!`,
)

// EscapeText backslash-escapes Markdown-significant characters. It applies
// to link text and image alt or title text only; code spans use backtick
// fencing instead and only escape embedded backticks.
func EscapeText(text string) string {
	return markdownEscaper.Replace(text)
}

// escapeCodeSpan escapes backticks inside an inline code span.
func escapeCodeSpan(code string) string {
	return strings.ReplaceAll(code, "`", "\\`")
}

// escapeTitle escapes a Markdown link title for embedding between quotes.
func escapeTitle(title string) string {
	title = strings.ReplaceAll(title, `\`, `\\`)
	return strings.ReplaceAll(title, `"`, `\"`)
}
