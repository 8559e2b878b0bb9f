package main

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/lang"
	"github.com/darkclainer/revgo/pkg/querier"
)

type pairedQuery func(ctx context.Context, text, source, target string) (interface{}, error)

type singleQuery func(ctx context.Context, text, language string) (interface{}, error)

type ResponseLanguages struct {
	OK        bool                `json:"ok"`
	Operation lang.Operation      `json:"operation"`
	Languages []string            `json:"languages"`
	Pairs     map[string][]string `json:"pairs,omitempty"`
}

func (s *Server) handleContext() http.HandlerFunc {
	return s.handlePaired(lang.Context, func(ctx context.Context, text, source, target string) (interface{}, error) {
		return s.q.Context(ctx, text, source, target)
	})
}

func (s *Server) handleTranslation() http.HandlerFunc {
	return s.handlePaired(lang.Translation, func(ctx context.Context, text, source, target string) (interface{}, error) {
		return s.q.Translation(ctx, text, source, target)
	})
}

func (s *Server) handleSpelling() http.HandlerFunc {
	return s.handleSingle(lang.Spelling, func(ctx context.Context, text, language string) (interface{}, error) {
		return s.q.SpellCheck(ctx, text, language)
	})
}

func (s *Server) handleSynonyms() http.HandlerFunc {
	return s.handleSingle(lang.Synonyms, func(ctx context.Context, text, language string) (interface{}, error) {
		return s.q.Synonyms(ctx, text, language)
	})
}

func (s *Server) handleConjugation() http.HandlerFunc {
	return s.handleSingle(lang.Conjugation, func(ctx context.Context, text, language string) (interface{}, error) {
		return s.q.Conjugation(ctx, text, language)
	})
}

func (s *Server) handlePaired(op lang.Operation, query pairedQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		values := r.URL.Query()
		text := values.Get("text")
		if text == "" {
			s.respondJSON(w, &querier.Failure{Message: "text parameter is required"}, http.StatusBadRequest)
			return
		}
		result, err := query(r.Context(), text, values.Get("from"), values.Get("to"))
		s.respondResult(w, op, result, err)
	}
}

func (s *Server) handleSingle(op lang.Operation, query singleQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		values := r.URL.Query()
		text := values.Get("text")
		if text == "" {
			s.respondJSON(w, &querier.Failure{Message: "text parameter is required"}, http.StatusBadRequest)
			return
		}
		result, err := query(r.Context(), text, values.Get("lang"))
		s.respondResult(w, op, result, err)
	}
}

func (s *Server) respondResult(w http.ResponseWriter, op lang.Operation, result interface{}, err error) {
	if err == nil {
		s.respondJSON(w, result, http.StatusOK)
		return
	}
	status := http.StatusBadGateway
	if errors.Is(err, querier.ErrInvalidArgument) || errors.Is(err, querier.ErrUnsupportedLanguage) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("Querier returned error",
			zap.Error(err),
			zap.String("op", string(op)),
		)
	}
	s.respondJSON(w, querier.NewFailure(err), status)
}

func (s *Server) handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		op, err := lang.ParseOperation(r.URL.Query().Get("op"))
		if err != nil {
			s.respondJSON(w, querier.NewFailure(err), http.StatusBadRequest)
			return
		}
		response := ResponseLanguages{
			OK:        true,
			Operation: op,
			Languages: lang.Languages(op),
		}
		if op.Paired() {
			response.Pairs = make(map[string][]string, len(response.Languages))
			for _, source := range response.Languages {
				response.Pairs[source] = lang.Targets(op, source)
			}
		}
		s.respondJSON(w, &response, http.StatusOK)
	}
}
