package parser

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/k3a/html2text"
	"golang.org/x/net/html"
)

var (
	ErrNoContent    = errors.New("page has no expected content")
	ErrMissingField = errors.New("response misses expected field")
)

// foldSpace trims s and collapses inner whitespace runs to one space.
func foldSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup removes tags and entities from an html fragment.
func stripMarkup(fragment string) string {
	return foldSpace(html2text.HTML2Text(fragment))
}

var emphasisMatcher = cascadia.MustCompile(`em`)

// emphasized returns the text of every <em> element of fragment.
func emphasized(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	var phrases []string
	doc.FindMatcher(emphasisMatcher).Each(func(i int, em *goquery.Selection) {
		if phrase := foldSpace(em.Text()); phrase != "" {
			phrases = append(phrases, phrase)
		}
	})
	return phrases
}

// nodeText concatenates the text below sel in document order. Line breaks
// become spaces and script or style contents are skipped.
func nodeText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeText(&b, node)
	}
	return foldSpace(b.String())
}

func writeText(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "script", "style":
			return
		case "br":
			b.WriteByte(' ')
			return
		}
		fallthrough
	case html.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeText(b, child)
		}
	}
}

// unique drops repeated values keeping the first occurrence.
func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
