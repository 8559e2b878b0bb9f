package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeIsTotal(t *testing.T) {
	for _, op := range Operations {
		op := op
		t.Run(string(op), func(t *testing.T) {
			languages := Languages(op)
			require.NotEmpty(t, languages)
			for _, name := range languages {
				code, err := Code(op, name)
				assert.NoError(t, err)
				assert.NotEmpty(t, code, "language %s has empty code", name)
			}
		})
	}
}

func TestCompatibilityHasCodes(t *testing.T) {
	for op, pairs := range compatibility {
		for source, targets := range pairs {
			_, err := Code(op, source)
			assert.NoErrorf(t, err, "%s source %s", op, source)
			for target := range targets {
				_, err := Code(op, target)
				assert.NoErrorf(t, err, "%s target %s", op, target)
				assert.NotEqual(t, source, target)
			}
		}
	}
}

func TestCompatibilityIsSymmetric(t *testing.T) {
	for op, pairs := range compatibility {
		for source, targets := range pairs {
			for target := range targets {
				assert.Truef(t, pairs.allows(target, source), "%s: %s-%s", op, target, source)
			}
		}
	}
}

func TestCode(t *testing.T) {
	testCases := map[string]struct {
		op   Operation
		name string
		code string
		err  error
	}{
		"translation english": {
			op:   Translation,
			name: "english",
			code: "eng",
		},
		"mixed case and spaces": {
			op:   Spelling,
			name: "  French ",
			code: "fra",
		},
		"synonyms": {
			op:   Synonyms,
			name: "POLISH",
			code: "pl",
		},
		"context uses names": {
			op:   Context,
			name: "German",
			code: "german",
		},
		"unsupported spelling": {
			op:   Spelling,
			name: "german",
			err:  ErrUnsupported,
		},
		"unknown language": {
			op:   Context,
			name: "klingon",
			err:  ErrUnsupported,
		},
		"empty": {
			op:   Synonyms,
			name: "",
			err:  ErrUnsupported,
		},
		"unknown operation": {
			op:   Operation("poetry"),
			name: "english",
			err:  ErrUnknownOperation,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			code, err := Code(tc.op, tc.name)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestCheckPair(t *testing.T) {
	testCases := map[string]struct {
		op     Operation
		source string
		target string
		codes  [2]string
		err    error
	}{
		"context english german": {
			op:     Context,
			source: "English",
			target: "german",
			codes:  [2]string{"english", "german"},
		},
		"translation russian english": {
			op:     Translation,
			source: "russian",
			target: "ENGLISH",
			codes:  [2]string{"rus", "eng"},
		},
		"context same language": {
			op:     Context,
			source: "english",
			target: "english",
			err:    ErrIncompatible,
		},
		"context unpaired": {
			op:     Context,
			source: "swedish",
			target: "turkish",
			err:    ErrIncompatible,
		},
		"bad target": {
			op:     Translation,
			source: "english",
			target: "elvish",
			err:    ErrUnsupported,
		},
		"single language operation": {
			op:     Synonyms,
			source: "english",
			target: "french",
			err:    ErrUnknownOperation,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			source, target, err := CheckPair(tc.op, tc.source, tc.target)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.codes, [2]string{source, target})
		})
	}
}

func TestTargets(t *testing.T) {
	targets := Targets(Context, "Swedish")
	assert.Equal(t, []string{"english", "french", "german", "spanish"}, targets)
	assert.Empty(t, Targets(Spelling, "english"))
}

func TestVoice(t *testing.T) {
	voice, ok := Voice("English")
	assert.True(t, ok)
	assert.Equal(t, "Heather22k", voice)

	_, ok = Voice("japanese")
	assert.False(t, ok)
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("Conjugation")
	assert.NoError(t, err)
	assert.Equal(t, Conjugation, op)

	_, err = ParseOperation("dance")
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestDetect(t *testing.T) {
	name, ok := Detect("This is a reasonably long English sentence, written so that the detector " +
		"has enough trigrams to be confident about the language it belongs to.")
	assert.True(t, ok)
	assert.Equal(t, "english", name)

	_, ok = Detect("")
	assert.False(t, ok)
}
