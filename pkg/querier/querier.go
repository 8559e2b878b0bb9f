package querier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/gammazero/workerpool"
	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/lang"
	"github.com/darkclainer/revgo/pkg/parser"
)

const (
	defaultProtocol        = "https"
	defaultContextHost     = "context.reverso.net"
	defaultTranslationHost = "api.reverso.net"
	defaultSpellingHost    = "orthographe.reverso.net"
	defaultSynonymsHost    = "synonyms.reverso.net"
	defaultConjugationHost = "conjugator.reverso.net"
	defaultVoiceHost       = "voice.reverso.net"

	contextPath     = "/translation/"
	translationPath = "/translate/v1/translation"
	spellingPath    = "/api/v1/Spelling"
	synonymsPath    = "/synonym/"
	voicePath       = "/RestPronunciation.svc/v1/output=json/GetVoiceStream/"

	// maxVoiceLength is the longest first translation, in characters, that
	// still gets a voice link.
	maxVoiceLength = 150
)

type Config struct {
	// ExtraHeader specifies what header will be added to each request
	ExtraHeader map[string]string `mapstructure:"extra_header"`
	// Timeout is applied to the default client only. Zero means no timeout
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
	Protocol string        `mapstructure:"protocol" validate:"omitempty,oneof=http https"`
	// Hosts of the different services, empty values mean the public ones
	ContextHost     string `mapstructure:"context_host"`
	TranslationHost string `mapstructure:"translation_host"`
	SpellingHost    string `mapstructure:"spelling_host"`
	SynonymsHost    string `mapstructure:"synonyms_host"`
	ConjugationHost string `mapstructure:"conjugation_host"`
	VoiceHost       string `mapstructure:"voice_host"`
	// UserAgents is rotated per request. Empty means the built-in pool
	UserAgents []string `mapstructure:"user_agents"`
	// MaxWorkers specifies how many worker parse html content of page
	// Zero value mean that it will be equal to number of logical CPU
	MaxWorkers int `mapstructure:"max_workers" validate:"min=0"`
}

func (c *Config) setDefaults() {
	setDefault(&c.Protocol, defaultProtocol)
	setDefault(&c.ContextHost, defaultContextHost)
	setDefault(&c.TranslationHost, defaultTranslationHost)
	setDefault(&c.SpellingHost, defaultSpellingHost)
	setDefault(&c.SynonymsHost, defaultSynonymsHost)
	setDefault(&c.ConjugationHost, defaultConjugationHost)
	setDefault(&c.VoiceHost, defaultVoiceHost)
	if len(c.UserAgents) == 0 {
		c.UserAgents = defaultUserAgents
	}
	if c.MaxWorkers < 1 { // nolint:gomnd // if number not specified
		c.MaxWorkers = runtime.NumCPU()
	}
}

func setDefault(value *string, def string) {
	if *value == "" {
		*value = def
	}
}

// Remote queries the public service over HTTP. It is safe for concurrent use.
type Remote struct {
	client *http.Client
	config *Config
	pool   *workerpool.WorkerPool
	p      Parser
	agents *userAgents
	logger *zap.Logger
}

func NewRemote(client *http.Client, p Parser, config *Config, logger *zap.Logger) *Remote {
	if config == nil {
		config = &Config{}
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	if p == nil {
		p = &PageParser{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	config.setDefaults()
	return &Remote{
		client: client,
		config: config,
		pool:   workerpool.New(config.MaxWorkers),
		p:      p,
		agents: newUserAgents(config.UserAgents),
		logger: logger,
	}
}

// Context returns usage examples of text and its translations into target.
func (q *Remote) Context(
	ctx context.Context, text, source, target string, done ...func(*parser.Context, error),
) (*parser.Context, error) {
	result, err := q.getContext(ctx, text, source, target)
	return complete(result, err, done)
}

func (q *Remote) getContext(ctx context.Context, text, source, target string) (*parser.Context, error) {
	in, err := q.checkPaired(lang.Context, text, source, target)
	if err != nil {
		return nil, err
	}
	contextURL := q.newURL(q.config.ContextHost, contextPath, in.SourceCode+"-"+in.TargetCode, in.Text)
	var result *parser.Context
	err = q.fetch(ctx, in.Op, http.MethodGet, contextURL, nil, func(page io.Reader) (err error) {
		result, err = q.p.ParseContext(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ShapeContext(result, in), nil
}

type translationRequest struct {
	Format  string             `json:"format"`
	From    string             `json:"from"`
	To      string             `json:"to"`
	Input   string             `json:"input"`
	Options translationOptions `json:"options"`
}

type translationOptions struct {
	ContextResults    bool   `json:"contextResults"`
	LanguageDetection bool   `json:"languageDetection"`
	Origin            string `json:"origin"`
	SentenceSplitter  bool   `json:"sentenceSplitter"`
}

// Translation translates text and attaches a voice link when the target
// language has a voice profile.
func (q *Remote) Translation(
	ctx context.Context, text, source, target string, done ...func(*parser.Translation, error),
) (*parser.Translation, error) {
	result, err := q.getTranslation(ctx, text, source, target)
	return complete(result, err, done)
}

func (q *Remote) getTranslation(ctx context.Context, text, source, target string) (*parser.Translation, error) {
	in, err := q.checkPaired(lang.Translation, text, source, target)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(&translationRequest{
		Format: "text",
		From:   in.SourceCode,
		To:     in.TargetCode,
		Input:  in.Text,
		Options: translationOptions{
			ContextResults:    true,
			LanguageDetection: true,
			Origin:            "reversomobile",
			SentenceSplitter:  false,
		},
	})
	if err != nil {
		return nil, newError(in.Op, ErrInvalidArgument, err)
	}
	translationURL := q.newURL(q.config.TranslationHost, translationPath)
	var result *parser.Translation
	err = q.fetch(ctx, in.Op, http.MethodPost, translationURL, body, func(page io.Reader) (err error) {
		result, err = q.p.ParseTranslation(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ShapeTranslation(result, in, q.config), nil
}

func (q *Remote) voiceLink(target string, translations []string) string {
	return voiceLink(q.config.Protocol, q.config.VoiceHost, target, translations)
}

// SpellCheck finds spelling and grammar mistakes in text.
func (q *Remote) SpellCheck(
	ctx context.Context, text, language string, done ...func(*parser.SpellCheck, error),
) (*parser.SpellCheck, error) {
	result, err := q.getSpellCheck(ctx, text, language)
	return complete(result, err, done)
}

func (q *Remote) getSpellCheck(ctx context.Context, text, language string) (*parser.SpellCheck, error) {
	in, err := q.checkSingle(lang.Spelling, text, language)
	if err != nil {
		return nil, err
	}
	spellingURL := q.newURL(q.config.SpellingHost, spellingPath)
	v := url.Values{}
	v.Set("text", in.Text)
	v.Set("language", in.SourceCode)
	v.Set("getCorrectionDetails", "true")
	spellingURL.RawQuery = v.Encode()

	var result *parser.SpellCheck
	err = q.fetch(ctx, in.Op, http.MethodGet, spellingURL, nil, func(page io.Reader) (err error) {
		result, err = q.p.ParseSpellCheck(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ShapeSpellCheck(result, in), nil
}

// Synonyms returns synonyms of text.
func (q *Remote) Synonyms(
	ctx context.Context, text, language string, done ...func(*parser.Synonyms, error),
) (*parser.Synonyms, error) {
	result, err := q.getSynonyms(ctx, text, language)
	return complete(result, err, done)
}

func (q *Remote) getSynonyms(ctx context.Context, text, language string) (*parser.Synonyms, error) {
	in, err := q.checkSingle(lang.Synonyms, text, language)
	if err != nil {
		return nil, err
	}
	synonymsURL := q.newURL(q.config.SynonymsHost, synonymsPath, in.SourceCode, in.Text)
	var result *parser.Synonyms
	err = q.fetch(ctx, in.Op, http.MethodGet, synonymsURL, nil, func(page io.Reader) (err error) {
		result, err = q.p.ParseSynonyms(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ShapeSynonyms(result, in), nil
}

// Conjugation returns the conjugation table of verb text.
func (q *Remote) Conjugation(
	ctx context.Context, text, language string, done ...func(*parser.Conjugation, error),
) (*parser.Conjugation, error) {
	result, err := q.getConjugation(ctx, text, language)
	return complete(result, err, done)
}

func (q *Remote) getConjugation(ctx context.Context, text, language string) (*parser.Conjugation, error) {
	in, err := q.checkSingle(lang.Conjugation, text, language)
	if err != nil {
		return nil, err
	}
	page := "conjugation-" + in.SourceCode + "-verb-" + in.Text + ".html"
	conjugationURL := q.newURL(q.config.ConjugationHost, "/", page)
	var result *parser.Conjugation
	err = q.fetch(ctx, in.Op, http.MethodGet, conjugationURL, nil, func(page io.Reader) (err error) {
		result, err = q.p.ParseConjugation(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ShapeConjugation(result, in), nil
}

func (q *Remote) checkPaired(op lang.Operation, text, source, target string) (*Input, error) {
	in, err := CheckPaired(op, text, source, target)
	if err != nil {
		return nil, err
	}
	q.logDetected(in)
	return in, nil
}

func (q *Remote) checkSingle(op lang.Operation, text, language string) (*Input, error) {
	in, err := CheckSingle(op, text, language)
	if err != nil {
		return nil, err
	}
	q.logDetected(in)
	return in, nil
}

func (q *Remote) logDetected(in *Input) {
	if in.Detected {
		q.logger.Debug("language detected", zap.String("op", string(in.Op)), zap.String("language", in.Source))
	}
}

// fetch sends the request and hands the body to parse on the worker pool.
func (q *Remote) fetch(
	ctx context.Context,
	op lang.Operation,
	method string,
	requestURL *url.URL,
	body []byte,
	parse func(page io.Reader) error,
) error {
	response, err := q.do(ctx, method, requestURL.String(), body)
	if err != nil {
		q.logger.Debug("request failed", zap.String("op", string(op)), zap.Error(err))
		return newError(op, ErrTransport, err)
	}
	defer response.Body.Close()
	q.logger.Debug("response received",
		zap.String("op", string(op)),
		zap.String("url", requestURL.String()),
		zap.Int("status", response.StatusCode),
	)
	// Use pool here, because it's heavy cpu bound task
	q.pool.SubmitWait(func() {
		err = parse(response.Body)
	})
	if err != nil {
		return newError(op, ErrShape, err)
	}
	return nil
}

func (q *Remote) do(ctx context.Context, method, urlRequest string, body []byte) (*http.Response, error) {
	request, err := q.newRequest(ctx, method, urlRequest, body)
	if err != nil {
		return nil, fmt.Errorf("can not assemble request: %w", err)
	}
	response, err := q.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, fmt.Errorf("unexpected response code: %d", response.StatusCode)
	}
	return response, nil
}

func (q *Remote) newURL(host, prefix string, segments ...string) *url.URL {
	return buildURL(q.config.Protocol, host, prefix, segments...)
}

func (q *Remote) newRequest(ctx context.Context, method, urlRequest string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlRequest, reader)
	if err != nil {
		return nil, fmt.Errorf("can not form request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("User-Agent", q.agents.next())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range q.config.ExtraHeader {
		req.Header.Add(key, value)
	}
	return req, nil
}

func (q *Remote) Close(ctx context.Context) error {
	q.client.CloseIdleConnections()
	q.pool.StopWait()
	return nil
}

// complete runs callbacks with the final values of a call and returns them.
func complete[T any](result *T, err error, done []func(*T, error)) (*T, error) {
	if err != nil {
		result = nil
	}
	for _, fn := range done {
		if fn != nil {
			fn(result, err)
		}
	}
	return result, err
}
