// Package converter transforms HTML documents and fragments into
// GitHub-flavored Markdown. Parsing is delegated to golang.org/x/net/html;
// the package itself walks the resulting tree, dispatches each element to a
// rendering rule, and reconciles block and inline spacing in the output.
package converter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Converter converts HTML to Markdown. A Converter is immutable after New
// and safe for concurrent use; every Convert call gets its own state.
type Converter struct {
	config  Config
	builtin map[string]handler
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config:  cfg,
		builtin: newRuleTable(),
	}, nil
}

// Convert takes an HTML document or fragment and returns Markdown. Empty or
// whitespace-only input yields an empty result, not an error.
func (c *Converter) Convert(input string) (Result, error) {
	return c.convert([]byte(input))
}

// ConvertBytes is Convert for raw byte input. A nil slice is rejected as
// absent input.
func (c *Converter) ConvertBytes(input []byte) (Result, error) {
	if input == nil {
		return Result{}, ErrNoInput
	}
	return c.convert(input)
}

func (c *Converter) convert(input []byte) (Result, error) {
	if !utf8.Valid(input) {
		return Result{}, ErrNotText
	}
	if len(input) > c.config.MaxSize {
		return Result{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrSizeLimit, len(input), c.config.MaxSize)
	}

	document := string(input)
	if strings.TrimSpace(document) == "" {
		return Result{}, nil
	}

	s := &state{
		config:  c.config,
		builtin: c.builtin,
	}

	root, err := s.parse(document)
	if err != nil {
		return Result{}, err
	}

	prune(root, c.config.FilterTags)

	markdown, err := s.renderBlocks(findBody(root))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Markdown: finalize(markdown),
		Warnings: s.warnings,
	}, nil
}

// parse builds the node tree, falling back to lenient fragment parsing when
// document parsing fails. Only a failure of both strategies is fatal.
func (s *state) parse(document string) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err == nil {
		return root, nil
	}
	s.addWarning(WarningParseRecovery, "", fmt.Sprintf("document parse failed, retrying as fragment: %v", err))

	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, fragErr := html.ParseFragment(strings.NewReader(document), body)
	if fragErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, fragErr)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// findBody locates the body element the parser produced. The fragment
// fallback hands back the body itself.
func findBody(root *html.Node) *html.Node {
	if root.Type == html.ElementNode && root.DataAtom == atom.Body {
		return root
	}
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	if body == nil {
		return root
	}
	return body
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// finalize trims the rendered output, collapses runs of blank lines, and
// appends exactly one trailing newline to non-empty results.
func finalize(markdown string) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}
	return blankRuns.ReplaceAllString(markdown, "\n\n") + "\n"
}

// ConvertString converts HTML to Markdown with the default configuration,
// discarding warnings.
func ConvertString(input string) (string, error) {
	conv, err := New(Config{})
	if err != nil {
		return "", err
	}
	result, err := conv.Convert(input)
	if err != nil {
		return "", err
	}
	return result.Markdown, nil
}
