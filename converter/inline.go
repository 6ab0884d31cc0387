package converter

import (
	"strings"

	"golang.org/x/net/html"
)

// renderAnchor converts an anchor element. The inline content is rendered
// first; a link whose href does not survive sanitization degrades to that
// plain text, with no brackets and no URL.
func renderAnchor(s *state, n *html.Node) (string, error) {
	wasLink := s.inLink
	s.inLink = true
	text, err := s.renderInline(n)
	s.inLink = wasLink
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	rawHref := attr(n, "href")
	href := SanitizeURL(rawHref)
	if href == "" {
		if strings.TrimSpace(rawHref) != "" {
			s.addWarning(WarningBlockedURL, "a", "href dropped: "+strings.TrimSpace(rawHref))
		}
		return text, nil
	}

	if text == "" {
		text = EscapeText(href)
	}

	if title := strings.TrimSpace(attr(n, "title")); title != "" {
		return "[" + text + "](" + href + " \"" + escapeTitle(title) + "\")", nil
	}
	return "[" + text + "](" + href + ")", nil
}

// renderImage converts an img element. The src attribute falls back to the
// data-src and data-original lazy-load hints; a missing or data:-scheme src
// drops the image entirely, alt text included.
func renderImage(s *state, n *html.Node) (string, error) {
	src := strings.TrimSpace(attr(n, "src"))
	if src == "" {
		src = strings.TrimSpace(attr(n, "data-src"))
	}
	if src == "" {
		src = strings.TrimSpace(attr(n, "data-original"))
	}
	if src == "" {
		return "", nil
	}

	sanitized := SanitizeURL(src)
	if sanitized == "" {
		s.addWarning(WarningBlockedURL, "img", "src dropped: "+src)
		return "", nil
	}

	alt := EscapeText(strings.TrimSpace(NormalizeText(attr(n, "alt"))))

	if title := strings.TrimSpace(attr(n, "title")); title != "" {
		return "![" + alt + "](" + sanitized + " \"" + escapeTitle(title) + "\")", nil
	}
	return "![" + alt + "](" + sanitized + ")", nil
}

// renderWrapped builds a handler that wraps rendered inline content in a
// symmetric delimiter. Boundary whitespace moves outside the delimiters, and
// empty content suppresses the wrapper entirely.
func renderWrapped(delim string) handler {
	return func(s *state, n *html.Node) (string, error) {
		inner, err := s.renderInline(n)
		if err != nil {
			return "", err
		}

		trimmed := strings.TrimSpace(inner)
		if trimmed == "" {
			return "", nil
		}

		lead, trail := "", ""
		if startsWithSpace(inner) {
			lead = " "
		}
		if endsWithSpace(inner) {
			trail = " "
		}
		return lead + delim + trimmed + delim + trail, nil
	}
}

// renderCodeSpan converts an inline code element. Code under a pre is
// consumed by the pre handler directly and never reaches this rule.
func renderCodeSpan(s *state, n *html.Node) (string, error) {
	code := rawText(n)
	if strings.TrimSpace(code) == "" {
		return "", nil
	}
	return "`" + escapeCodeSpan(code) + "`", nil
}

// renderHardBreak converts a br element to a Markdown hard break.
func renderHardBreak(s *state, n *html.Node) (string, error) {
	return "  \n", nil
}
