package querier

import (
	"encoding/json"
	"io"

	"github.com/darkclainer/revgo/pkg/parser"
)

type Parser interface {
	ParseContext(page io.Reader) (*parser.Context, error)
	ParseTranslation(page io.Reader) (*parser.Translation, error)
	ParseSpellCheck(page io.Reader) (*parser.SpellCheck, error)
	ParseSynonyms(page io.Reader) (*parser.Synonyms, error)
	ParseConjugation(page io.Reader) (*parser.Conjugation, error)
}

// PageParser parses the pages and payloads the service really sends.
type PageParser struct{}

func (p *PageParser) ParseContext(page io.Reader) (*parser.Context, error) {
	return parser.ParseContextHTML(page)
}

func (p *PageParser) ParseTranslation(page io.Reader) (*parser.Translation, error) {
	return parser.ParseTranslationJSON(page)
}

func (p *PageParser) ParseSpellCheck(page io.Reader) (*parser.SpellCheck, error) {
	return parser.ParseSpellCheckJSON(page)
}

func (p *PageParser) ParseSynonyms(page io.Reader) (*parser.Synonyms, error) {
	return parser.ParseSynonymsHTML(page)
}

func (p *PageParser) ParseConjugation(page io.Reader) (*parser.Conjugation, error) {
	return parser.ParseConjugationHTML(page)
}

// RecordParser decodes records from their own JSON form. Use it for testing
type RecordParser struct{}

func (p *RecordParser) ParseContext(page io.Reader) (*parser.Context, error) {
	return decodeRecord[parser.Context](page)
}

func (p *RecordParser) ParseTranslation(page io.Reader) (*parser.Translation, error) {
	return decodeRecord[parser.Translation](page)
}

func (p *RecordParser) ParseSpellCheck(page io.Reader) (*parser.SpellCheck, error) {
	return decodeRecord[parser.SpellCheck](page)
}

func (p *RecordParser) ParseSynonyms(page io.Reader) (*parser.Synonyms, error) {
	return decodeRecord[parser.Synonyms](page)
}

func (p *RecordParser) ParseConjugation(page io.Reader) (*parser.Conjugation, error) {
	return decodeRecord[parser.Conjugation](page)
}

func decodeRecord[T any](page io.Reader) (*T, error) {
	var record T
	if err := json.NewDecoder(page).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
