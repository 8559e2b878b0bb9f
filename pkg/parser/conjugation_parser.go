package parser

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var infinitiveMatcher = cascadia.MustCompile(`#ch_lblVerb`)
var tenseBoxMatcher = cascadia.MustCompile(`div.blue-box-wrap`)
var tenseTitleMatcher = cascadia.MustCompile(`p`)
var verbFormMatcher = cascadia.MustCompile(`ul.wrap-verbs-listing > li`)

// ParseConjugationHTML extracts a conjugation table. Every tense box becomes
// one group; repeated forms inside a group are dropped.
func ParseConjugationHTML(page io.Reader) (*Conjugation, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can not parse page: %w", err)
	}

	groups := make([]*ConjugationGroup, 0)
	doc.FindMatcher(tenseBoxMatcher).Each(func(i int, box *goquery.Selection) {
		forms := getVerbForms(box)
		if len(forms) == 0 {
			return
		}
		groups = append(groups, &ConjugationGroup{
			ID:    len(groups),
			Tense: getTense(box),
			Forms: forms,
		})
	})
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no conjugation groups", ErrNoContent)
	}
	return &Conjugation{
		Infinitive: nodeText(doc.FindMatcher(infinitiveMatcher).First()),
		Groups:     groups,
	}, nil
}

func getTense(box *goquery.Selection) string {
	if title := foldSpace(box.AttrOr("mobile-title", "")); title != "" {
		return title
	}
	return nodeText(box.FindMatcher(tenseTitleMatcher).First())
}

func getVerbForms(box *goquery.Selection) []*VerbForm {
	texts := box.FindMatcher(verbFormMatcher).Map(func(i int, li *goquery.Selection) string {
		return nodeText(li)
	})
	var forms []*VerbForm
	for _, text := range unique(texts) {
		if text == "" {
			continue
		}
		forms = append(forms, &VerbForm{ID: len(forms), Form: text})
	}
	return forms
}
