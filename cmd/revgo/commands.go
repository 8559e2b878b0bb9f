package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/darkclainer/revgo/pkg/lang"
	"github.com/darkclainer/revgo/pkg/parser"
	"github.com/darkclainer/revgo/pkg/querier"
)

// command describes one operation: how to ask the service, how to validate
// input and shape a saved page offline, and how to print the record.
type command[T any] struct {
	query func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*T, error)
	check func(c *cli.Context, text string) (*querier.Input, error)
	parse func(page io.Reader) (*T, error)
	shape func(record *T, in *querier.Input) *T
	print func(w io.Writer, record *T)
}

func (cmd *command[T]) run(c *cli.Context, conf *querier.Config) error {
	text, err := textArg(c)
	if err != nil {
		return err
	}
	var record *T
	if page := c.String("page"); page != "" {
		if c.String("save") != "" {
			return usageErrorf("--page and --save can not be specified at the same time")
		}
		in, err := cmd.check(c, text)
		if err != nil {
			return err
		}
		record, err = cmd.readPage(page)
		if err != nil {
			return err
		}
		record = cmd.shape(record, in)
	} else {
		remote, closeRemote, err := newRemote(c, conf)
		if err != nil {
			return err
		}
		defer closeRemote()
		record, err = cmd.query(c.Context, c, remote, text)
		if err != nil {
			return err
		}
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, record)
	}
	cmd.print(c.App.Writer, record)
	return nil
}

func (cmd *command[T]) readPage(path string) (*T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, usageErrorf("can not open file %s: %s", path, err)
	}
	defer file.Close()
	record, err := cmd.parse(file)
	if err != nil {
		return nil, fmt.Errorf("can not parse %s: %w", path, err)
	}
	return record, nil
}

func newRemote(c *cli.Context, conf *querier.Config) (*querier.Remote, func(), error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, nil, fmt.Errorf("can not instantiate logger: %w", err)
	}
	remoteConf := *conf
	remoteConf.Timeout = c.Duration("timeout")
	client := &http.Client{Timeout: remoteConf.Timeout}
	if path := c.String("save"); path != "" {
		client.Transport = &savingTransport{path: path}
	}
	remote := querier.NewRemote(client, nil, &remoteConf, logger)
	return remote, func() {
		_ = remote.Close(context.Background())
		_ = logger.Sync()
	}, nil
}

func printJSON(w io.Writer, v interface{}) error {
	content, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("can not marshal result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", content)
	return err
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "page",
			Usage:     "parse the saved response in `FILE` instead of querying the service",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      "save",
			Usage:     "save the raw response to `FILE`",
			TakesFile: true,
		},
	}
}

func pairedFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "source language",
			Value:   lang.Auto,
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"t"},
			Usage:   "target language",
			Value:   "english",
		},
	}, pageFlags()...)
}

func singleFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   "language of the text",
			Value:   lang.Auto,
		},
	}, pageFlags()...)
}

func checkPaired(op lang.Operation) func(c *cli.Context, text string) (*querier.Input, error) {
	return func(c *cli.Context, text string) (*querier.Input, error) {
		return querier.CheckPaired(op, text, c.String("from"), c.String("to"))
	}
}

func checkSingle(op lang.Operation) func(c *cli.Context, text string) (*querier.Input, error) {
	return func(c *cli.Context, text string) (*querier.Input, error) {
		return querier.CheckSingle(op, text, c.String("lang"))
	}
}

func contextCommand(conf *querier.Config) *cli.Command {
	cmd := &command[parser.Context]{
		query: func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*parser.Context, error) {
			return q.Context(ctx, text, c.String("from"), c.String("to"))
		},
		parse: parser.ParseContextHTML,
		check: checkPaired(lang.Context),
		shape: querier.ShapeContext,
		print: printContext,
	}
	return &cli.Command{
		Name:      "context",
		Usage:     "show translations of TEXT with bilingual usage examples",
		ArgsUsage: "TEXT",
		Flags:     pairedFlags(),
		Action: func(c *cli.Context) error {
			return cmd.run(c, conf)
		},
	}
}

func translateCommand(conf *querier.Config) *cli.Command {
	cmd := &command[parser.Translation]{
		query: func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*parser.Translation, error) {
			return q.Translation(ctx, text, c.String("from"), c.String("to"))
		},
		parse: parser.ParseTranslationJSON,
		check: checkPaired(lang.Translation),
		shape: func(record *parser.Translation, in *querier.Input) *parser.Translation {
			return querier.ShapeTranslation(record, in, conf)
		},
		print: printTranslation,
	}
	return &cli.Command{
		Name:      "translate",
		Usage:     "translate TEXT",
		ArgsUsage: "TEXT",
		Flags:     pairedFlags(),
		Action: func(c *cli.Context) error {
			return cmd.run(c, conf)
		},
	}
}

func spellCommand(conf *querier.Config) *cli.Command {
	cmd := &command[parser.SpellCheck]{
		query: func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*parser.SpellCheck, error) {
			return q.SpellCheck(ctx, text, c.String("lang"))
		},
		parse: parser.ParseSpellCheckJSON,
		check: checkSingle(lang.Spelling),
		shape: querier.ShapeSpellCheck,
		print: printSpellCheck,
	}
	return &cli.Command{
		Name:      "spell",
		Usage:     "check spelling and grammar of TEXT",
		ArgsUsage: "TEXT",
		Flags:     singleFlags(),
		Action: func(c *cli.Context) error {
			return cmd.run(c, conf)
		},
	}
}

func synonymsCommand(conf *querier.Config) *cli.Command {
	cmd := &command[parser.Synonyms]{
		query: func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*parser.Synonyms, error) {
			return q.Synonyms(ctx, text, c.String("lang"))
		},
		parse: parser.ParseSynonymsHTML,
		check: checkSingle(lang.Synonyms),
		shape: querier.ShapeSynonyms,
		print: printSynonyms,
	}
	return &cli.Command{
		Name:      "synonyms",
		Usage:     "list synonyms of TEXT",
		ArgsUsage: "TEXT",
		Flags:     singleFlags(),
		Action: func(c *cli.Context) error {
			return cmd.run(c, conf)
		},
	}
}

func conjugateCommand(conf *querier.Config) *cli.Command {
	cmd := &command[parser.Conjugation]{
		query: func(ctx context.Context, c *cli.Context, q querier.Querier, text string) (*parser.Conjugation, error) {
			return q.Conjugation(ctx, text, c.String("lang"))
		},
		parse: parser.ParseConjugationHTML,
		check: checkSingle(lang.Conjugation),
		shape: querier.ShapeConjugation,
		print: printConjugation,
	}
	return &cli.Command{
		Name:      "conjugate",
		Usage:     "conjugate the verb TEXT",
		ArgsUsage: "TEXT",
		Flags:     singleFlags(),
		Action: func(c *cli.Context) error {
			return cmd.run(c, conf)
		},
	}
}

type languagesResult struct {
	Operation lang.Operation      `json:"operation"`
	Languages []string            `json:"languages"`
	Pairs     map[string][]string `json:"pairs,omitempty"`
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:      "languages",
		Usage:     "list languages supported by OPERATION",
		ArgsUsage: "OPERATION",
		Action: func(c *cli.Context) error {
			name, err := textArg(c)
			if err != nil {
				return err
			}
			op, err := lang.ParseOperation(name)
			if err != nil {
				return usageErrorf("%s", err)
			}
			result := languagesResult{
				Operation: op,
				Languages: lang.Languages(op),
			}
			if op.Paired() {
				result.Pairs = make(map[string][]string, len(result.Languages))
				for _, source := range result.Languages {
					result.Pairs[source] = lang.Targets(op, source)
				}
			}
			if c.Bool("json") {
				return printJSON(c.App.Writer, &result)
			}
			printLanguages(c.App.Writer, &result)
			return nil
		},
	}
}
