package converter

import "strings"

// dangerousSchemes never survive sanitization.
var dangerousSchemes = []string{"javascript:", "data:", "vbscript:"}

var urlEscaper = strings.NewReplacer(
	"(", "%28",
	")", "%29",
	" ", "%20",
)

// SanitizeURL validates an href or src value for embedding in Markdown link
// syntax. Dangerous schemes yield the empty string; parentheses and spaces
// are percent-escaped so the URL cannot terminate the link early. Decoding
// the result recovers the trimmed original.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lower, scheme) {
			return ""
		}
	}

	return urlEscaper.Replace(raw)
}
