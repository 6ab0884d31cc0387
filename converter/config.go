package converter

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultMaxSize is the input byte cap applied when Config.MaxSize is zero.
const DefaultMaxSize = 1000000

// Rule renders a single element node. Rules registered in Config.Rules are
// consulted before the built-in handler for the same tag. A rule for a
// block-level tag should terminate its fragment with a blank line.
type Rule func(n *html.Node, ctx *Context) (string, error)

// Config configures HTML to Markdown conversion behavior.
type Config struct {
	// FilterTags names tags whose entire subtrees are removed before
	// rendering. Nil selects the default set (script, style, noscript,
	// meta, link); an empty non-nil slice disables filtering.
	FilterTags []string

	// MaxDepth caps element nesting. Content nested strictly deeper is
	// replaced by a truncation marker. Zero means unbounded.
	MaxDepth int

	// MaxSize caps input length in bytes. Zero selects DefaultMaxSize.
	MaxSize int

	// Rules overrides or extends the built-in tag handlers, keyed by tag
	// name. Keys are lowercased at New, so the match is case-insensitive.
	Rules map[string]Rule
}

// DefaultFilterTags returns a fresh copy of the default filter set.
func DefaultFilterTags() []string {
	return []string{"script", "style", "noscript", "meta", "link"}
}

var tagNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

func (c Config) applyDefaults() Config {
	if c.FilterTags == nil {
		c.FilterTags = DefaultFilterTags()
	}
	if c.MaxSize == 0 {
		c.MaxSize = DefaultMaxSize
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	if c.FilterTags != nil {
		cloned.FilterTags = append([]string(nil), c.FilterTags...)
	}
	if c.Rules != nil {
		cloned.Rules = make(map[string]Rule, len(c.Rules))
		for tag, rule := range c.Rules {
			cloned.Rules[strings.ToLower(tag)] = rule
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must be non-negative, got %d", c.MaxDepth)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("maxSize must be positive, got %d", c.MaxSize)
	}

	for _, tag := range c.FilterTags {
		if !tagNamePattern.MatchString(tag) {
			return fmt.Errorf("invalid filter tag %q", tag)
		}
	}

	for tag, rule := range c.Rules {
		if !tagNamePattern.MatchString(tag) {
			return fmt.Errorf("invalid rule tag %q", tag)
		}
		if rule == nil {
			return fmt.Errorf("rule for tag %q is nil", tag)
		}
	}

	return nil
}
