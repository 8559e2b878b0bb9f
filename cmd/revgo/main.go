package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/darkclainer/revgo/pkg/querier"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage),
		errors.Is(err, querier.ErrInvalidArgument),
		errors.Is(err, querier.ErrUnsupportedLanguage):
		return codeErrorArgs
	default:
		return codeInternalError
	}
}

func main() {
	if err := newApp(&querier.Config{}).Run(os.Args); err != nil {
		exitf(exitCode(err), "%s\n", err)
	}
}
