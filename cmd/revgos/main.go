package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	conf, zapConf, err := getConfig(os.Args[1:])
	if err != nil {
		exitf(codeErrorArgs, "Failure while parsing arguments: %s\n", err)
	}
	logger, err := zapConf.Build()
	if err != nil {
		exitf(codeInternalError, "Failure while instantiating logger: %s\n", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do on sync failure

	logger.Info("Starting server", zap.String("host", conf.Host))
	server := New(logger, conf)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		if err := server.Close(context.Background()); err != nil {
			logger.Error("Shutdown error", zap.Error(err))
			return
		}
	}()

	logger.Info("Listening started", zap.String("url", "http://"+conf.Host))
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", zap.Error(err))
		}
	}
	logger.Info("Closed")
}
