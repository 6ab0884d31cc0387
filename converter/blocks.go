package converter

import (
	"strings"

	"golang.org/x/net/html"
)

// renderParagraph converts a p element. An empty paragraph renders to
// nothing rather than an empty block.
func renderParagraph(s *state, n *html.Node) (string, error) {
	content, err := s.renderInline(n)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil
	}
	return content + "\n\n", nil
}

// renderHeading builds the handler for one heading level.
func renderHeading(level int) handler {
	prefix := strings.Repeat("#", level) + " "
	return func(s *state, n *html.Node) (string, error) {
		content, err := s.renderInline(n)
		if err != nil {
			return "", err
		}

		content = strings.TrimSpace(content)
		if content == "" {
			return "", nil
		}
		return prefix + content + "\n\n", nil
	}
}

// renderBlockquote converts a blockquote element, prefixing every rendered
// line with ">". Lines already quoted gain another ">" so nesting stacks.
func renderBlockquote(s *state, n *html.Node) (string, error) {
	content, err := s.renderBlocks(n)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		switch {
		case line == "":
			lines[i] = ">"
		case strings.HasPrefix(line, ">"):
			lines[i] = ">" + line
		default:
			lines[i] = "> " + line
		}
	}

	return strings.Join(lines, "\n") + "\n\n", nil
}

// bareLanguages are class names accepted as language tags without the
// language- prefix.
var bareLanguages = map[string]bool{
	"python":     true,
	"js":         true,
	"javascript": true,
	"html":       true,
	"css":        true,
	"java":       true,
	"c":          true,
	"cpp":        true,
}

// renderPre emits a fenced code block. A descendant code element supplies
// the language tag and body; otherwise the pre text itself is used. The body
// is taken verbatim, so the inline code rule never runs for it.
func renderPre(s *state, n *html.Node) (string, error) {
	body := rawText(n)
	lang := ""
	if code := findElement(n, "code"); code != nil {
		body = rawText(code)
		lang = codeLanguage(code)
	}

	body = trimBlankLines(body)
	if body == "" {
		return "", nil
	}
	return "```" + lang + "\n" + body + "\n```\n\n", nil
}

// codeLanguage derives the fence language tag from a code element's class
// attribute, taking the first match.
func codeLanguage(n *html.Node) string {
	for _, field := range strings.Fields(attr(n, "class")) {
		if lang, ok := strings.CutPrefix(field, "language-"); ok && lang != "" {
			return lang
		}
		if lower := strings.ToLower(field); bareLanguages[lower] {
			return lower
		}
	}
	return ""
}

// renderRule converts an hr element to a thematic break.
func renderRule(s *state, n *html.Node) (string, error) {
	return "---\n\n", nil
}
