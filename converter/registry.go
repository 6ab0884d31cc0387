package converter

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// handler renders one element kind.
type handler func(*state, *html.Node) (string, error)

// blockTags classifies tags whose fragments occupy their own lines. Unknown
// tags outside this set render as transparent inline containers.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"blockquote": true,
	"ul":         true,
	"ol":         true,
	"pre":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"table":      true,
	"hr":         true,
}

// newRuleTable builds the built-in tag handler table. The table is built once
// per Converter and never mutated afterwards; custom rules are a separate
// lookup layer checked first by the walker.
func newRuleTable() map[string]handler {
	table := map[string]handler{
		"p":          renderParagraph,
		"blockquote": renderBlockquote,
		"pre":        renderPre,
		"hr":         renderRule,
		"br":         renderHardBreak,
		"a":          renderAnchor,
		"img":        renderImage,
		"strong":     renderWrapped("**"),
		"b":          renderWrapped("**"),
		"em":         renderWrapped("*"),
		"i":          renderWrapped("*"),
		"del":        renderWrapped("~~"),
		"s":          renderWrapped("~~"),
		"strike":     renderWrapped("~~"),
		"code":       renderCodeSpan,
		"ul":         renderBulletList,
		"ol":         renderOrderedList,
		"table":      renderTable,
	}
	for level := 1; level <= 6; level++ {
		table["h"+strconv.Itoa(level)] = renderHeading(level)
	}
	return table
}

// Context exposes the walker to custom rules.
type Context struct {
	s *state
}

// Depth returns the current element nesting depth.
func (c *Context) Depth() int {
	return c.s.depth
}

// ListDepth returns the current list nesting level.
func (c *Context) ListDepth() int {
	return len(c.s.listStack)
}

// ListOrdered reports whether the innermost enclosing list is ordered.
// It returns false outside any list.
func (c *Context) ListOrdered() bool {
	if len(c.s.listStack) == 0 {
		return false
	}
	return c.s.listStack[len(c.s.listStack)-1].ordered
}

// RenderChildren renders the node's children as block content.
func (c *Context) RenderChildren(n *html.Node) (string, error) {
	return c.s.renderBlocks(n)
}

// RenderInline renders the node's children as a single inline run.
func (c *Context) RenderInline(n *html.Node) (string, error) {
	return c.s.renderInline(n)
}

// tagName returns the lowercase tag name of an element node.
func tagName(n *html.Node) string {
	return strings.ToLower(n.Data)
}

// attr returns the value of the named attribute, matching case-insensitively.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether the named attribute is present.
func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return true
		}
	}
	return false
}

// findElement returns the first descendant element with the given tag name.
func findElement(n *html.Node, name string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && tagName(child) == name {
			return child
		}
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}
