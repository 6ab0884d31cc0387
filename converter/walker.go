package converter

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// truncationMarker replaces content nested beyond the configured depth.
const truncationMarker = "[...]"

// state carries per-conversion rendering context. A fresh state is created
// for every Convert call, which is what makes a Converter safe for
// concurrent use on independent inputs.
type state struct {
	config    Config
	builtin   map[string]handler
	warnings  []Warning
	depth     int
	listStack []listScope
	inLink    bool
}

// listScope records one level of the list-nesting stack.
type listScope struct {
	ordered bool
	index   int
}

func (s *state) addWarning(warnType WarningType, tag, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
	})
}

// renderNode dispatches a single node to its rendering rule. Rule failures
// are contained here: a failing subtree degrades to a placeholder instead of
// aborting the whole conversion.
func (s *state) renderNode(n *html.Node) (string, error) {
	switch n.Type {
	case html.TextNode:
		text := NormalizeText(n.Data)
		if s.inLink {
			text = EscapeText(text)
		}
		return text, nil
	case html.ElementNode:
	default:
		return "", nil
	}

	name := tagName(n)

	s.depth++
	defer func() { s.depth-- }()

	if s.config.MaxDepth > 0 && s.depth > s.config.MaxDepth {
		s.addWarning(WarningDepthLimit, name, fmt.Sprintf("content below depth %d truncated", s.config.MaxDepth))
		return terminated(name, truncationMarker), nil
	}

	if rule, ok := s.config.Rules[name]; ok {
		return s.applyRule(name, rule, n)
	}

	if h, ok := s.builtin[name]; ok {
		frag, err := h(s, n)
		if err != nil {
			s.addWarning(WarningRuleFailure, name, err.Error())
			return terminated(name, placeholder(name)), nil
		}
		return frag, nil
	}

	// Unknown tags are transparent containers.
	if blockTags[name] {
		return s.renderBlocks(n)
	}
	return s.renderInline(n)
}

// applyRule runs a custom rule with panic containment.
func (s *state) applyRule(name string, rule Rule, n *html.Node) (frag string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.addWarning(WarningRuleFailure, name, fmt.Sprintf("custom rule panicked: %v", r))
			frag = terminated(name, placeholder(name))
			err = nil
		}
	}()

	frag, ruleErr := rule(n, &Context{s: s})
	if ruleErr != nil {
		s.addWarning(WarningRuleFailure, name, ruleErr.Error())
		return terminated(name, placeholder(name)), nil
	}
	return frag, nil
}

func placeholder(tag string) string {
	return "[conversion failed: " + tag + "]"
}

// terminated gives a marker fragment the block terminator its tag demands.
func terminated(tag, marker string) string {
	if blockTags[tag] {
		return marker + "\n\n"
	}
	return marker
}

// renderBlocks renders the children of a block container. Runs of inline
// content between block-level children are flushed as paragraph-like blocks,
// which is how inline and block siblings are reconciled.
func (s *state) renderBlocks(n *html.Node) (string, error) {
	var sb strings.Builder
	var inline strings.Builder

	flush := func() {
		text := strings.TrimSpace(inline.String())
		inline.Reset()
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n\n")
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			text := NormalizeText(child.Data)
			if s.inLink {
				text = EscapeText(text)
			}
			inline.WriteString(text)
		case html.ElementNode:
			frag, err := s.renderNode(child)
			if err != nil {
				return "", err
			}
			if blockTags[tagName(child)] {
				flush()
				sb.WriteString(frag)
			} else {
				inline.WriteString(frag)
			}
		}
	}
	flush()

	return sb.String(), nil
}

// renderInline renders children as a single inline run. Block-level
// descendants, which are rare in inline context, are flattened onto the run
// with their surrounding newlines trimmed.
func (s *state) renderInline(n *html.Node) (string, error) {
	var sb strings.Builder

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			text := NormalizeText(child.Data)
			if s.inLink {
				text = EscapeText(text)
			}
			sb.WriteString(text)
		case html.ElementNode:
			frag, err := s.renderNode(child)
			if err != nil {
				return "", err
			}
			if blockTags[tagName(child)] {
				frag = strings.TrimSpace(frag)
				if frag == "" {
					continue
				}
				if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
					sb.WriteString(" ")
				}
			}
			sb.WriteString(frag)
		}
	}

	return sb.String(), nil
}
