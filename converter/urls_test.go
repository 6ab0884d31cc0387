package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURLBlocksDangerousSchemes(t *testing.T) {
	blocked := []string{
		"javascript:alert(1)",
		"JavaScript:alert(1)",
		"JAVASCRIPT:void(0)",
		"data:text/html;base64,PHNjcmlwdD4=",
		"DATA:image/png;base64,x",
		"vbscript:MsgBox(1)",
		"  javascript:alert(1)",
	}
	for _, u := range blocked {
		assert.Empty(t, SanitizeURL(u), "url %q", u)
	}
}

func TestSanitizeURLEscapesUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/wiki/Foo_%28bar%29", SanitizeURL("https://en.wikipedia.org/wiki/Foo_(bar)"))
	assert.Equal(t, "/docs/my%20page", SanitizeURL("/docs/my page"))
	assert.Equal(t, "https://example.com/a%28b%29%20c", SanitizeURL("  https://example.com/a(b) c  "))
}

func TestSanitizeURLPassesSafeURLs(t *testing.T) {
	safe := []string{
		"https://example.com/path?x=1&y=2",
		"http://example.com",
		"mailto:dev@example.com",
		"ftp://host/file",
		"/relative/path",
		"#fragment",
		"../up/one",
	}
	for _, u := range safe {
		assert.Equal(t, u, SanitizeURL(u), "url %q", u)
	}
}

func TestSanitizeURLEmpty(t *testing.T) {
	assert.Empty(t, SanitizeURL(""))
	assert.Empty(t, SanitizeURL("   "))
}
