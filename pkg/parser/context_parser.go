package parser

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var exampleMatcher = cascadia.MustCompile(`div.example`)
var exampleSourceMatcher = cascadia.MustCompile(`div.src span.text`)
var exampleTargetMatcher = cascadia.MustCompile(`div.trg span.text`)

// ParseContextHTML extracts translation candidates and example sentence pairs
// from a context page. Text, Source and Target are left for the caller.
func ParseContextHTML(page io.Reader) (*Context, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can not parse page: %w", err)
	}
	context := &Context{
		Translations: getTranslations(doc.Selection),
		Examples:     getExamples(doc.Selection),
	}
	if len(context.Translations) == 0 && len(context.Examples) == 0 {
		return nil, fmt.Errorf("%w: neither examples nor translations", ErrNoContent)
	}
	return context, nil
}

// getExamples returns one example per div.example whose source segment has
// text, so the count equals the number of non-blank source segments and IDs
// stay gapless. A missing target sentence is kept as an empty string.
func getExamples(sel *goquery.Selection) []*Example {
	examples := make([]*Example, 0)
	sel.FindMatcher(exampleMatcher).Each(func(i int, example *goquery.Selection) {
		source := nodeText(example.FindMatcher(exampleSourceMatcher).First())
		if source == "" {
			return
		}
		examples = append(examples, &Example{
			ID:     len(examples),
			Source: source,
			Target: nodeText(example.FindMatcher(exampleTargetMatcher).First()),
		})
	})
	return examples
}

var translationMatcher = cascadia.MustCompile(`#translations-content .translation`)
var displayTermMatcher = cascadia.MustCompile(`.display-term`)

func getTranslations(sel *goquery.Selection) []string {
	var translations []string
	sel.FindMatcher(translationMatcher).Each(func(i int, translation *goquery.Selection) {
		term := translation.FindMatcher(displayTermMatcher)
		if term.Length() == 0 {
			term = translation
		}
		if text := nodeText(term.First()); text != "" {
			translations = append(translations, text)
		}
	})
	return unique(translations)
}
