package parser

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var synonymMatcher = cascadia.MustCompile(`a.synonym.relevant`)

func ParseSynonymsHTML(page io.Reader) (*Synonyms, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can not parse page: %w", err)
	}

	synonyms := make([]*Synonym, 0)
	doc.FindMatcher(synonymMatcher).Each(func(i int, a *goquery.Selection) {
		if text := nodeText(a); text != "" {
			synonyms = append(synonyms, &Synonym{ID: len(synonyms), Synonym: text})
		}
	})
	if len(synonyms) == 0 {
		return nil, fmt.Errorf("%w: no synonyms found", ErrNoContent)
	}
	return &Synonyms{Synonyms: synonyms}, nil
}
