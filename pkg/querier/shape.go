package querier

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/darkclainer/revgo/pkg/lang"
	"github.com/darkclainer/revgo/pkg/parser"
)

// Input is the validated input of one operation. Source and Target are
// identifiers, SourceCode and TargetCode are what the service expects.
// Target and TargetCode are empty for single language operations.
type Input struct {
	Op         lang.Operation
	Text       string
	Source     string
	Target     string
	SourceCode string
	TargetCode string
	// Detected is set when Source was resolved from lang.Auto
	Detected bool
}

// CheckPaired validates input of context and translation.
func CheckPaired(op lang.Operation, text, source, target string) (*Input, error) {
	in, err := checkText(op, text, source)
	if err != nil {
		return nil, err
	}
	in.Target = lang.Normalize(target)
	in.SourceCode, in.TargetCode, err = lang.CheckPair(op, in.Source, in.Target)
	if err != nil {
		return nil, newError(op, ErrUnsupportedLanguage, err)
	}
	return in, nil
}

// CheckSingle validates input of spelling, synonyms and conjugation.
func CheckSingle(op lang.Operation, text, language string) (*Input, error) {
	in, err := checkText(op, text, language)
	if err != nil {
		return nil, err
	}
	in.SourceCode, err = lang.Code(op, in.Source)
	if err != nil {
		return nil, newError(op, ErrUnsupportedLanguage, err)
	}
	return in, nil
}

// checkText trims text and normalizes the source language, resolving
// lang.Auto by detection.
func checkText(op lang.Operation, text, source string) (*Input, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, newError(op, ErrInvalidArgument, errors.New("text must not be empty"))
	}
	in := &Input{Op: op, Text: text, Source: lang.Normalize(source)}
	if in.Source == "" {
		return nil, newError(op, ErrInvalidArgument, errors.New("language must not be empty"))
	}
	if in.Source != lang.Auto {
		return in, nil
	}
	detected, ok := lang.Detect(text)
	if !ok {
		return nil, newError(op, ErrUnsupportedLanguage, errors.New("can not detect language of text"))
	}
	in.Source = detected
	in.Detected = true
	return in, nil
}

// ShapeContext fills the request fields of a parsed context record and drops
// translations equal to the text.
func ShapeContext(record *parser.Context, in *Input) *parser.Context {
	record.OK = true
	record.Text = in.Text
	record.Source = in.Source
	record.Target = in.Target
	record.Translations = withoutText(record.Translations, in.Text)
	return record
}

// ShapeTranslation fills the request fields of a parsed translation and
// attaches the voice link. Voice host and protocol are taken from config,
// nil or empty values mean the public ones.
func ShapeTranslation(record *parser.Translation, in *Input, config *Config) *parser.Translation {
	protocol, host := defaultProtocol, defaultVoiceHost
	if config != nil {
		if config.Protocol != "" {
			protocol = config.Protocol
		}
		if config.VoiceHost != "" {
			host = config.VoiceHost
		}
	}
	record.OK = true
	record.Text = in.Text
	record.Source = in.Source
	record.Target = in.Target
	record.Voice = voiceLink(protocol, host, in.Target, record.Translations)
	return record
}

func ShapeSpellCheck(record *parser.SpellCheck, in *Input) *parser.SpellCheck {
	record.OK = true
	record.Text = in.Text
	record.Source = in.Source
	return record
}

func ShapeSynonyms(record *parser.Synonyms, in *Input) *parser.Synonyms {
	record.OK = true
	record.Text = in.Text
	record.Source = in.Source
	return record
}

// ShapeConjugation falls back to the text when the page names no infinitive.
func ShapeConjugation(record *parser.Conjugation, in *Input) *parser.Conjugation {
	record.OK = true
	record.Text = in.Text
	record.Source = in.Source
	if record.Infinitive == "" {
		record.Infinitive = in.Text
	}
	return record
}

// voiceLink returns a pronunciation link for the first translation or an
// empty string if target has no voice profile or the translation is too long.
func voiceLink(protocol, host, target string, translations []string) string {
	voice, ok := lang.Voice(target)
	if !ok || len(translations) == 0 {
		return ""
	}
	first := translations[0]
	if utf8.RuneCountInString(first) > maxVoiceLength {
		return ""
	}
	voiceURL := buildURL(protocol, host, voicePath)
	return fmt.Sprintf("%svoiceName=%s?inputText=%s",
		voiceURL,
		voice,
		base64.StdEncoding.EncodeToString([]byte(first)),
	)
}

// buildURL joins escaped path segments to prefix. Segments may contain slashes.
func buildURL(protocol, host, prefix string, segments ...string) *url.URL {
	rawPath := prefix
	for i, segment := range segments {
		if i > 0 {
			rawPath += "/"
		}
		rawPath += url.PathEscape(segment)
	}
	newURL := &url.URL{
		Scheme:  protocol,
		Host:    host,
		RawPath: rawPath,
	}
	newURL.Path, _ = url.PathUnescape(rawPath)
	return newURL
}

func withoutText(translations []string, text string) []string {
	filtered := translations[:0]
	for _, t := range translations {
		if !strings.EqualFold(t, text) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
