package converter

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// renderTable converts a table element in two passes: the first row supplies
// the header and the per-column alignment row, subsequent rows supply the
// body. Rows without td cells are skipped as repeated headers.
func renderTable(s *state, n *html.Node) (string, error) {
	rows := tableRows(n)
	if len(rows) == 0 {
		return "", nil
	}

	headerCells := rowCells(rows[0], "th", "td")
	if len(headerCells) == 0 {
		return "", nil
	}

	header := make([]string, len(headerCells))
	aligns := make([]string, len(headerCells))
	for i, cell := range headerCells {
		content, err := s.renderCell(cell)
		if err != nil {
			return "", err
		}
		header[i] = content
		aligns[i] = alignMarker(attr(cell, "align"))
	}

	var sb strings.Builder
	writeRow(&sb, header)
	writeRow(&sb, aligns)

	for _, row := range rows[1:] {
		cells := rowCells(row, "td")
		if len(cells) == 0 {
			continue
		}

		body := make([]string, len(header))
		for i := range header {
			if i >= len(cells) {
				break
			}
			content, err := s.renderCell(cells[i])
			if err != nil {
				return "", err
			}
			body[i] = content
		}
		writeRow(&sb, body)
	}

	return sb.String() + "\n", nil
}

// renderCell renders a cell's inline content with pipes escaped so the cell
// cannot break the table grid. The walker only counted the table element, so
// the descent through the row and any section wrapper down to the cell is
// counted here before the cell content renders.
func (s *state) renderCell(cell *html.Node) (string, error) {
	descent := 1
	for p := cell.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode || tagName(p) == "table" {
			break
		}
		descent++
	}

	s.depth += descent
	if s.config.MaxDepth > 0 && s.depth > s.config.MaxDepth {
		s.depth -= descent
		s.addWarning(WarningDepthLimit, tagName(cell), fmt.Sprintf("content below depth %d truncated", s.config.MaxDepth))
		return truncationMarker, nil
	}

	content, err := s.renderInline(cell)
	s.depth -= descent
	if err != nil {
		return "", err
	}
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "\n", " ")
	return strings.ReplaceAll(content, "|", "\\|"), nil
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// alignMarker maps an align attribute to its GFM alignment cell.
func alignMarker(align string) string {
	switch strings.ToLower(strings.TrimSpace(align)) {
	case "left":
		return ":--"
	case "right":
		return "--:"
	case "center":
		return ":-:"
	default:
		return "---"
	}
}

// tableRows collects the tr elements of one table, looking through section
// wrappers but not into nested tables.
func tableRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			switch tagName(child) {
			case "tr":
				rows = append(rows, child)
			case "thead", "tbody", "tfoot":
				walk(child)
			}
		}
	}
	walk(n)
	return rows
}

// rowCells returns the direct cell children of a row matching the given tag
// names.
func rowCells(tr *html.Node, names ...string) []*html.Node {
	var cells []*html.Node
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if tagName(child) == name {
				cells = append(cells, child)
				break
			}
		}
	}
	return cells
}
