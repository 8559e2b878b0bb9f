package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/querier"
)

type Server struct {
	http.Server
	mux    http.ServeMux
	conf   *Config
	logger *zap.Logger
	q      querier.Querier
}

func New(logger *zap.Logger, conf *Config) *Server {
	remote := querier.NewRemote(nil, nil, &conf.Remote, logger.Named("remote"))
	return newServer(logger, conf, remote)
}

func newServer(logger *zap.Logger, conf *Config, q querier.Querier) *Server {
	s := Server{
		conf:   conf,
		logger: logger,
		q:      q,
	}
	s.mux.HandleFunc("/context", s.middleLogging(s.handleContext()))
	s.mux.HandleFunc("/translation", s.middleLogging(s.handleTranslation()))
	s.mux.HandleFunc("/spelling", s.middleLogging(s.handleSpelling()))
	s.mux.HandleFunc("/synonyms", s.middleLogging(s.handleSynonyms()))
	s.mux.HandleFunc("/conjugation", s.middleLogging(s.handleConjugation()))
	s.mux.HandleFunc("/languages", s.middleLogging(s.handleLanguages()))
	s.Addr = conf.Host
	s.Server.Handler = &s.mux
	return &s
}

func (s *Server) Close(ctx context.Context) error {
	var reasons []string
	if serverErr := s.Server.Shutdown(ctx); serverErr != nil {
		reasons = append(reasons, "server shutdown failed: "+serverErr.Error())
	}
	if querierErr := s.q.Close(ctx); querierErr != nil {
		reasons = append(reasons, "querier close failed: "+querierErr.Error())
	}
	if len(reasons) > 0 {
		return fmt.Errorf("close failed because: %s", strings.Join(reasons, " AND "))
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, vPtr interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	buffer := new(bytes.Buffer)
	if err := json.NewEncoder(buffer).Encode(vPtr); err != nil {
		s.logger.Error("encoding failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"message":"encoding error"}`))
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(buffer.Bytes())
}

func (s *Server) middleLogging(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.String("client", r.RemoteAddr),
			zap.String("method", r.Method),
		)
		handler(w, r)
	}
}
