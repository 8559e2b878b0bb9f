package querier

import (
	"context"

	"github.com/darkclainer/revgo/pkg/parser"
)

// Querier runs the operations of the remote service. Optional done callbacks
// receive the same values the call returns, right before it returns.
type Querier interface {
	Context(ctx context.Context, text, source, target string, done ...func(*parser.Context, error)) (*parser.Context, error)
	Translation(ctx context.Context, text, source, target string, done ...func(*parser.Translation, error)) (*parser.Translation, error)
	SpellCheck(ctx context.Context, text, language string, done ...func(*parser.SpellCheck, error)) (*parser.SpellCheck, error)
	Synonyms(ctx context.Context, text, language string, done ...func(*parser.Synonyms, error)) (*parser.Synonyms, error)
	Conjugation(ctx context.Context, text, language string, done ...func(*parser.Conjugation, error)) (*parser.Conjugation, error)
	Close(ctx context.Context) error
}
