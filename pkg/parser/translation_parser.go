package parser

import (
	"encoding/json"
	"fmt"
	"io"
)

type translationResponse struct {
	From              string   `json:"from"`
	To                string   `json:"to"`
	Translation       []string `json:"translation"`
	LanguageDetection *struct {
		DetectedLanguage string `json:"detectedLanguage"`
	} `json:"languageDetection"`
	ContextResults *struct {
		Results []struct {
			Translation    string   `json:"translation"`
			SourceExamples []string `json:"sourceExamples"`
			TargetExamples []string `json:"targetExamples"`
			Rude           bool     `json:"rude"`
		} `json:"results"`
	} `json:"contextResults"`
}

// ParseTranslationJSON reads the response of the translation service.
// Source and Target are the service codes echoed back by the response.
func ParseTranslationJSON(page io.Reader) (*Translation, error) {
	var response translationResponse
	if err := json.NewDecoder(page).Decode(&response); err != nil {
		return nil, fmt.Errorf("can not decode translation response: %w", err)
	}

	var translations []string
	for _, t := range response.Translation {
		if t = foldSpace(t); t != "" {
			translations = append(translations, t)
		}
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("%w: translation", ErrMissingField)
	}

	translation := &Translation{
		Source:       response.From,
		Target:       response.To,
		Translations: translations,
	}
	if response.LanguageDetection != nil {
		translation.DetectedLanguage = response.LanguageDetection.DetectedLanguage
	}
	if response.ContextResults != nil && len(response.ContextResults.Results) > 0 {
		result := response.ContextResults.Results[0]
		translation.Context = &TranslationContext{
			Examples: getContextExamples(result.SourceExamples, result.TargetExamples),
			Rude:     result.Rude,
		}
	}
	return translation, nil
}

func getContextExamples(sources, targets []string) []*ContextExample {
	examples := make([]*ContextExample, 0, len(sources))
	for i, source := range sources {
		var target string
		if i < len(targets) {
			target = targets[i]
		}
		examples = append(examples, &ContextExample{
			ID:            i,
			Source:        stripMarkup(source),
			Target:        stripMarkup(target),
			SourcePhrases: emphasized(source),
			TargetPhrases: emphasized(target),
		})
	}
	return examples
}
