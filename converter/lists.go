package converter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// renderBulletList converts a ul element.
func renderBulletList(s *state, n *html.Node) (string, error) {
	return s.renderList(n, false)
}

// renderOrderedList converts an ol element.
func renderOrderedList(s *state, n *html.Node) (string, error) {
	return s.renderList(n, true)
}

// renderList renders the direct li children of a list element. Nested lists
// inside an item recurse through that item and push a further stack level,
// so indentation is four spaces per nesting depth and ordered numbering is
// independent per list.
func (s *state) renderList(n *html.Node, ordered bool) (string, error) {
	indent := strings.Repeat("    ", len(s.listStack))

	s.listStack = append(s.listStack, listScope{ordered: ordered})
	defer func() { s.listStack = s.listStack[:len(s.listStack)-1] }()

	var sb strings.Builder
	index := 0

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || tagName(child) != "li" {
			continue
		}
		index++
		scope := &s.listStack[len(s.listStack)-1]
		scope.index = index

		marker := "- "
		if scope.ordered {
			marker = strconv.Itoa(scope.index) + ". "
		}

		// Entering the item is an element descent like any other.
		s.depth++
		if s.config.MaxDepth > 0 && s.depth > s.config.MaxDepth {
			s.depth--
			s.addWarning(WarningDepthLimit, "li", fmt.Sprintf("content below depth %d truncated", s.config.MaxDepth))
			sb.WriteString(indent)
			sb.WriteString(marker)
			sb.WriteString(truncationMarker)
			sb.WriteString("\n")
			continue
		}

		if box := findCheckbox(child); box != nil {
			// Task-list items keep the dash marker regardless of list kind.
			if hasAttr(box, "checked") {
				marker = "- [x] "
			} else {
				marker = "- [ ] "
			}
		}

		content, err := s.renderListItem(child)
		s.depth--
		if err != nil {
			return "", err
		}

		sb.WriteString(indent)
		sb.WriteString(marker)
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", nil
	}
	return sb.String() + "\n", nil
}

// renderListItem renders li content with nested blocks joined by single
// newlines so nested list lines stay attached to their item. The checkbox
// input of a task item renders to nothing on its own, so no special
// exclusion is needed here.
func (s *state) renderListItem(n *html.Node) (string, error) {
	var parts []string
	var inline strings.Builder

	flush := func() {
		text := strings.TrimSpace(inline.String())
		inline.Reset()
		if text != "" {
			parts = append(parts, text)
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
				if frag = strings.TrimRight(frag, "\n"); frag != "" {
					parts = append(parts, frag)
				}
			} else {
				inline.WriteString(frag)
			}
		}
	}
	flush()

	return strings.Join(parts, "\n"), nil
}

// findCheckbox returns the checkbox input among an item's direct children,
// if any. Checkboxes wrapped deeper than one level are the item content's
// own business.
func findCheckbox(li *html.Node) *html.Node {
	for child := li.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || tagName(child) != "input" {
			continue
		}
		if strings.EqualFold(attr(child, "type"), "checkbox") {
			return child
		}
	}
	return nil
}
