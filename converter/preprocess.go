package converter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// prune removes comment nodes and filtered-tag subtrees from a freshly
// parsed tree. The tree is private to the current Convert call, so the
// mutation never escapes it. Nodes to remove are collected first and
// detached afterwards to keep the traversal away from a changing tree.
func prune(root *html.Node, filterTags []string) {
	stripComments(root)

	if len(filterTags) == 0 {
		return
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find(strings.Join(filterTags, ", ")).Remove()
}

func stripComments(root *html.Node) {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.CommentNode {
				comments = append(comments, child)
				continue
			}
			walk(child)
		}
	}
	walk(root)

	for _, comment := range comments {
		comment.Parent.RemoveChild(comment)
	}
}
