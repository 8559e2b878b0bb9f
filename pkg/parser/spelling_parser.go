package parser

import (
	"encoding/json"
	"fmt"
	"io"
)

type spellingResponse struct {
	Text        *string               `json:"text"`
	Corrections *[]spellingCorrection `json:"corrections"`
}

type spellingCorrection struct {
	Type             string `json:"type"`
	LongDescription  string `json:"longDescription"`
	ShortDescription string `json:"shortDescription"`
	CorrectionText   string `json:"correctionText"`
	MistakeText      string `json:"mistakeText"`
	StartIndex       int    `json:"startIndex"`
	EndIndex         int    `json:"endIndex"`
	Suggestions      []struct {
		Text       string `json:"text"`
		Definition string `json:"definition"`
		Category   string `json:"category"`
	} `json:"suggestions"`
}

// ParseSpellCheckJSON reads the response of the spelling service.
// An empty corrections list is a valid result for a text without mistakes.
func ParseSpellCheckJSON(page io.Reader) (*SpellCheck, error) {
	var response spellingResponse
	if err := json.NewDecoder(page).Decode(&response); err != nil {
		return nil, fmt.Errorf("can not decode spelling response: %w", err)
	}
	if response.Corrections == nil {
		return nil, fmt.Errorf("%w: corrections", ErrMissingField)
	}
	if response.Text == nil {
		return nil, fmt.Errorf("%w: text", ErrMissingField)
	}

	corrections := make([]*Correction, 0, len(*response.Corrections))
	for i, c := range *response.Corrections {
		explanation := c.LongDescription
		if explanation == "" {
			explanation = c.ShortDescription
		}
		correction := &Correction{
			ID:          i,
			Text:        c.MistakeText,
			Type:        c.Type,
			Explanation: stripMarkup(explanation),
			Corrected:   c.CorrectionText,
			StartIndex:  c.StartIndex,
			EndIndex:    c.EndIndex,
		}
		for _, s := range c.Suggestions {
			correction.Suggestions = append(correction.Suggestions, &Suggestion{
				Text:       s.Text,
				Definition: stripMarkup(s.Definition),
				Category:   s.Category,
			})
		}
		corrections = append(corrections, correction)
	}
	return &SpellCheck{
		Corrected:   *response.Text,
		Corrections: corrections,
	}, nil
}
