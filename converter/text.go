package converter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// namedEntities are the named character references the normalizer decodes.
var namedEntities = map[string]string{
	"lt":     "<",
	"gt":     ">",
	"amp":    "&",
	"quot":   "\"",
	"apos":   "'",
	"nbsp":   "\u00a0",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
	"sect":   "§",
	"para":   "¶",
	"euro":   "€",
	"pound":  "£",
	"cent":   "¢",
	"deg":    "°",
	"plusmn": "±",
	"divide": "÷",
	"times":  "×",
}

// NormalizeText prepares a text run for inline assembly: entities are
// decoded, non-breaking spaces become ordinary spaces, zero-width spaces are
// dropped, horizontal whitespace runs collapse to a single space, and
// spacing between CJK ideographs is removed. Newlines split the text into
// logical lines that are rejoined with blank-line separation.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = DecodeEntities(text)
	text = strings.ReplaceAll(text, "\u200b", "")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	if !strings.ContainsRune(text, '\n') {
		return stripCJKSpacing(collapseSpaces(text))
	}

	lead := startsWithSpace(text)
	trail := endsWithSpace(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(collapseSpaces(line))
		if line != "" {
			lines = append(lines, stripCJKSpacing(line))
		}
	}
	if len(lines) == 0 {
		// Whitespace-only runs keep a single separating space so that
		// adjacent inline elements do not fuse.
		return " "
	}

	joined := strings.Join(lines, "\n\n")
	if lead {
		joined = " " + joined
	}
	if trail {
		joined += " "
	}
	return joined
}

// DecodeEntities decodes the supported named entities plus decimal and
// hexadecimal numeric references. Unknown references are left literal, so
// decoding plain text is a no-op.
func DecodeEntities(text string) string {
	amp := strings.IndexByte(text, '&')
	if amp == -1 {
		return text
	}

	var sb strings.Builder
	sb.WriteString(text[:amp])

	for i := amp; i < len(text); {
		if text[i] != '&' {
			next := strings.IndexByte(text[i:], '&')
			if next == -1 {
				sb.WriteString(text[i:])
				break
			}
			sb.WriteString(text[i : i+next])
			i += next
			continue
		}

		// Longest supported reference is 10 bytes including delimiters.
		semi := -1
		for j := i + 1; j < len(text) && j <= i+10; j++ {
			if text[j] == ';' {
				semi = j
				break
			}
		}
		if semi == -1 {
			sb.WriteByte('&')
			i++
			continue
		}

		if decoded, ok := decodeEntityName(text[i+1 : semi]); ok {
			sb.WriteString(decoded)
			i = semi + 1
			continue
		}
		sb.WriteByte('&')
		i++
	}

	return sb.String()
}

func decodeEntityName(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if name[0] == '#' {
		digits := name[1:]
		base := 10
		if len(digits) > 1 && (digits[0] == 'x' || digits[0] == 'X') {
			base = 16
			digits = digits[1:]
		}
		value, err := strconv.ParseInt(digits, base, 32)
		if err != nil || value <= 0 || !utf8.ValidRune(rune(value)) {
			return "", false
		}
		return string(rune(value)), true
	}

	decoded, ok := namedEntities[name]
	return decoded, ok
}

// collapseSpaces reduces runs of horizontal whitespace to one space while
// keeping single boundary spaces intact.
func collapseSpaces(text string) string {
	var sb strings.Builder
	space := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\r' {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// stripCJKSpacing removes a space strictly between two CJK ideographs; CJK
// text is not word-space-delimited.
func stripCJKSpacing(text string) string {
	if !strings.ContainsRune(text, ' ') {
		return text
	}

	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i, r := range runes {
		if r == ' ' && i > 0 && i+1 < len(runes) && isCJK(runes[i-1]) && isCJK(runes[i+1]) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fa5
}

func startsWithSpace(text string) bool {
	return text != "" && (text[0] == ' ' || text[0] == '\t')
}

func endsWithSpace(text string) bool {
	return text != "" && (text[len(text)-1] == ' ' || text[len(text)-1] == '\t')
}

// rawText returns the concatenated text of a subtree with its original
// whitespace intact. Entities were already decoded by the parser, so code
// content needs no further processing.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				sb.WriteString(child.Data)
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// trimBlankLines drops leading and trailing whitespace-only lines while
// preserving interior blank lines and indentation.
func trimBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
