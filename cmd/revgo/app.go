package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/querier"
)

// errUsage marks errors caused by wrong command line arguments.
var errUsage = errors.New("usage")

func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// newApp builds the command line application. Every command that talks to
// the service gets its own Remote built from a copy of conf.
func newApp(conf *querier.Config) *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Query Reverso context, translation, spelling, synonyms and conjugation.",
		Description: strings.Join([]string{
			"Every language is named by its lowercase English name, e.g. english or french.",
			"Use auto as the source language to detect it from the text.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as indented JSON",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for a single request, zero means no timeout",
				Value: conf.Timeout,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log requests to stderr",
			},
		},
		HideHelpCommand: true,
		Commands: []*cli.Command{
			contextCommand(conf),
			translateCommand(conf),
			spellCommand(conf),
			synonymsCommand(conf),
			conjugateCommand(conf),
			languagesCommand(),
		},
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if !c.Bool("verbose") {
		return zap.NewNop(), nil
	}
	zapConf := zap.NewDevelopmentConfig()
	zapConf.OutputPaths = []string{"stderr"}
	return zapConf.Build()
}

// textArg returns the only positional argument.
func textArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", usageErrorf("%s expects exactly one TEXT argument, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}
