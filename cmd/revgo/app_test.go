package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkclainer/revgo/pkg/parser"
	"github.com/darkclainer/revgo/pkg/querier"
)

func fixturePath(dir, name string) string {
	return filepath.Join("..", "..", "pkg", "parser", "testdata", dir, name)
}

func runApp(t *testing.T, conf *querier.Config, args ...string) (string, error) {
	t.Helper()
	if conf == nil {
		conf = &querier.Config{}
	}
	var out bytes.Buffer
	app := newApp(conf)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"revgo"}, args...))
	return out.String(), err
}

func TestSynonymsFromPage(t *testing.T) {
	out, err := runApp(t, nil,
		"--json", "synonyms", "--lang", "english", "--page", fixturePath("html", "synonyms_house.html"), "house",
	)
	require.NoError(t, err)

	var record parser.Synonyms
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.True(t, record.OK)
	assert.Equal(t, "house", record.Text)
	assert.Equal(t, "english", record.Source)
	require.NotEmpty(t, record.Synonyms)
	assert.Equal(t, "home", record.Synonyms[0].Synonym)
}

func TestConjugationTable(t *testing.T) {
	out, err := runApp(t, nil,
		"conjugate", "--lang", "english", "--page", fixturePath("html", "conjugation_have.html"), "have",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Infinitive: have")
	assert.Contains(t, out, "Indicative Present")
	assert.Contains(t, out, "had")
}

func TestSpellCheckFromPage(t *testing.T) {
	out, err := runApp(t, nil,
		"spell", "--lang", "english", "--page", fixturePath("json", "spelling_clean.json"), "Hello world",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "No mistakes found")
}

func TestTranslationFromPageMatchesRemote(t *testing.T) {
	out, err := runApp(t, nil,
		"--json", "translate", "--from", "english", "--to", "german",
		"--page", fixturePath("json", "translation_meet.json"), "meet me half way",
	)
	require.NoError(t, err)

	var record parser.Translation
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.True(t, record.OK)
	assert.Equal(t, "english", record.Source)
	assert.Equal(t, "german", record.Target)
	expectedVoice := "https://voice.reverso.net/RestPronunciation.svc/v1/output=json/GetVoiceStream/" +
		"voiceName=Claudia22k?inputText=" + base64.StdEncoding.EncodeToString([]byte("komm mir auf halbem Weg entgegen"))
	assert.Equal(t, expectedVoice, record.Voice)
}

func TestContextFromPageDropsText(t *testing.T) {
	out, err := runApp(t, nil,
		"--json", "context", "--from", "english", "--to", "german",
		"--page", fixturePath("html", "context_meet_halfway.html"), "Entgegenkommen",
	)
	require.NoError(t, err)

	var record parser.Context
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, []string{"auf halbem Weg entgegenkommen", "halbwegs entgegenkommen"}, record.Translations)
}

func TestPageRejectsUnsupportedLanguages(t *testing.T) {
	testCases := map[string][]string{
		"unknown source": {
			"translate", "--from", "klingon", "--to", "german",
			"--page", fixturePath("json", "translation_meet.json"), "meet me half way",
		},
		"incompatible pair": {
			"context", "--from", "german", "--to", "chinese",
			"--page", fixturePath("html", "context_meet_halfway.html"), "entgegenkommen",
		},
		"unsupported single language": {
			"synonyms", "--lang", "japanese",
			"--page", fixturePath("html", "synonyms_house.html"), "house",
		},
	}
	for name := range testCases {
		args := testCases[name]
		t.Run(name, func(t *testing.T) {
			out, err := runApp(t, nil, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, querier.ErrUnsupportedLanguage), "got %v", err)
			assert.Equal(t, codeErrorArgs, exitCode(err))
			assert.Empty(t, out)
		})
	}
}

func TestSaveFetchedPage(t *testing.T) {
	fixture, err := os.ReadFile(fixturePath("html", "synonyms_house.html"))
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/synonym/en/house" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(fixture)
	}))
	defer server.Close()

	savePath := filepath.Join(t.TempDir(), "house.html")
	conf := &querier.Config{
		Protocol:     "http",
		SynonymsHost: server.Listener.Addr().String(),
		MaxWorkers:   1,
	}
	out, err := runApp(t, conf, "synonyms", "--lang", "english", "--save", savePath, "house")
	require.NoError(t, err)
	assert.Contains(t, out, "dwelling")

	saved, err := os.ReadFile(savePath)
	require.NoError(t, err)
	assert.Equal(t, fixture, saved)
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runApp(t, nil, "--json", "languages", "spelling")
	require.NoError(t, err)

	var result languagesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"english", "french"}, result.Languages)
	assert.Nil(t, result.Pairs)

	out, err = runApp(t, nil, "languages", "context")
	require.NoError(t, err)
	assert.Contains(t, out, "swedish")
}

func TestExitCodes(t *testing.T) {
	testCases := map[string]struct {
		args []string
		code int
	}{
		"missing text": {
			args: []string{"synonyms", "--lang", "english"},
			code: codeErrorArgs,
		},
		"page and save": {
			args: []string{"synonyms", "--page", "a.html", "--save", "b.html", "house"},
			code: codeErrorArgs,
		},
		"missing page": {
			args: []string{"synonyms", "--lang", "english", "--page", filepath.Join(t.TempDir(), "missing.html"), "house"},
			code: codeErrorArgs,
		},
		"unsupported language": {
			args: []string{"spell", "--lang", "german", "Hallo"},
			code: codeErrorArgs,
		},
		"unknown operation": {
			args: []string{"languages", "dance"},
			code: codeErrorArgs,
		},
		"malformed page": {
			args: []string{"spell", "--lang", "english", "--page", fixturePath("json", "spelling_malformed.json"), "helo"},
			code: codeInternalError,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			_, err := runApp(t, nil, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(err))
		})
	}
}
