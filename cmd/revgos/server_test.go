package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/mocks"
	"github.com/darkclainer/revgo/pkg/parser"
	"github.com/darkclainer/revgo/pkg/querier"
)

func newTestServer(q querier.Querier) *Server {
	return newServer(zap.NewNop(), &Config{Host: "localhost:0"}, q)
}

func serve(s *Server, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHandleContext(t *testing.T) {
	q := &mocks.Querier{}
	expected := &parser.Context{
		OK:           true,
		Text:         "hello",
		Source:       "english",
		Target:       "french",
		Translations: []string{"bonjour"},
		Examples:     []*parser.Example{{ID: 0, Source: "hello there", Target: "bonjour toi"}},
	}
	q.On("Context", mock.Anything, "hello", "english", "french").Return(expected, nil)

	recorder := serve(newTestServer(q), "/context?text=hello&from=english&to=french")
	q.AssertExpectations(t)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var got parser.Context
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	assert.Equal(t, expected, &got)
}

func TestHandleErrors(t *testing.T) {
	testCases := map[string]struct {
		target string
		setup  func(q *mocks.Querier)
		status int
	}{
		"missing text": {
			target: "/synonyms?lang=english",
			setup:  func(q *mocks.Querier) {},
			status: http.StatusBadRequest,
		},
		"unsupported language": {
			target: "/spelling?text=hallo&lang=german",
			setup: func(q *mocks.Querier) {
				q.On("SpellCheck", mock.Anything, "hallo", "german").
					Return(nil, &querier.Error{Op: "spelling", Kind: querier.ErrUnsupportedLanguage})
			},
			status: http.StatusBadRequest,
		},
		"transport failure": {
			target: "/translation?text=hi&from=english&to=german",
			setup: func(q *mocks.Querier) {
				q.On("Translation", mock.Anything, "hi", "english", "german").
					Return(nil, &querier.Error{Op: "translation", Kind: querier.ErrTransport, Err: errors.New("refused")})
			},
			status: http.StatusBadGateway,
		},
		"shape failure": {
			target: "/conjugation?text=have&lang=english",
			setup: func(q *mocks.Querier) {
				q.On("Conjugation", mock.Anything, "have", "english").
					Return(nil, &querier.Error{Op: "conjugation", Kind: querier.ErrShape})
			},
			status: http.StatusBadGateway,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			q := &mocks.Querier{}
			tc.setup(q)

			recorder := serve(newTestServer(q), tc.target)
			q.AssertExpectations(t)
			assert.Equal(t, tc.status, recorder.Code)

			var failure querier.Failure
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&failure))
			assert.False(t, failure.OK)
			assert.NotEmpty(t, failure.Message)
		})
	}
}

func TestHandleLanguages(t *testing.T) {
	s := newTestServer(&mocks.Querier{})

	recorder := serve(s, "/languages?op=spelling")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var response ResponseLanguages
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, []string{"english", "french"}, response.Languages)
	assert.Nil(t, response.Pairs)

	recorder = serve(s, "/languages?op=context")
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Contains(t, response.Pairs["swedish"], "english")

	recorder = serve(s, "/languages?op=unknown")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServerClose(t *testing.T) {
	t.Run("fine", func(t *testing.T) {
		q := &mocks.Querier{}
		q.On("Close", mock.Anything).Return(nil)
		err := newTestServer(q).Close(context.TODO())
		q.AssertExpectations(t)
		assert.NoError(t, err)
	})
	t.Run("error in querier", func(t *testing.T) {
		q := &mocks.Querier{}
		q.On("Close", mock.Anything).Return(errors.New("test err"))
		err := newTestServer(q).Close(context.TODO())
		q.AssertExpectations(t)
		assert.Error(t, err)
	})
}
