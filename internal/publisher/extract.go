// Package publisher resolves a game's publisher by scraping a web search
// result page. The markup it matches belongs to a third-party page and
// changes without notice, so callers must treat a miss as normal.
package publisher

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const publisherLabel = "Publisher:"

var (
	// labelBlockClasses marks the knowledge-panel row holding "Publisher: <name>".
	labelBlockClasses = []string{"BNeawe", "s3v9rd", "AP7Wnd"}
	// valueChain is the descendant path from the row to the publisher name:
	// span.BNeawe.tAd8D.AP7Wnd a span.XLloXe.AP7Wnd
	valueChain = []selector{
		{tag: "span", classes: []string{"BNeawe", "tAd8D", "AP7Wnd"}},
		{tag: "a"},
		{tag: "span", classes: []string{"XLloXe", "AP7Wnd"}},
	}
)

type selector struct {
	tag     string
	classes []string
}

func (s selector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != s.tag {
		return false
	}
	return hasClasses(n, s.classes)
}

// ExtractPublisher returns the publisher name from a search result page, or
// "" when the labeled field is not present.
func ExtractPublisher(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	block := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" &&
			hasClasses(n, labelBlockClasses) &&
			strings.Contains(textContent(n), publisherLabel)
	})
	if block == nil {
		return "", nil
	}

	var parts []string
	for _, n := range selectChain(block, valueChain) {
		parts = append(parts, textContent(n))
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}

// selectChain returns the nodes matching a descendant-combinator chain under
// root, in document order and without duplicates.
func selectChain(root *html.Node, chain []selector) []*html.Node {
	current := []*html.Node{root}
	for _, sel := range chain {
		seen := make(map[*html.Node]bool)
		var next []*html.Node
		for _, n := range current {
			for _, m := range findAll(n, sel.matches) {
				if !seen[m] {
					seen[m] = true
					next = append(next, m)
				}
			}
		}
		current = next
	}
	return current
}

// findFirst returns the first descendant of n, in document order, matching pred.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if pred(c) {
			return c
		}
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant of n matching pred, in document order.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if pred(c) {
			out = append(out, c)
		}
		out = append(out, findAll(c, pred)...)
	}
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasClasses(n *html.Node, want []string) bool {
	var class string
	for _, a := range n.Attr {
		if a.Key == "class" {
			class = a.Val
			break
		}
	}
	have := strings.Fields(class)
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
