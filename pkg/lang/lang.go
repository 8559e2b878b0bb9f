// Package lang holds the static language tables of the remote service:
// identifier to service code lookups, language pair compatibility and
// voice profiles. All tables are read-only and safe for concurrent use.
package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Auto is the source identifier that asks for language detection.
const Auto = "auto"

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnsupported      = errors.New("unsupported language")
	ErrIncompatible     = errors.New("unsupported language combination")
)

// Normalize trims and lower-cases a language identifier.
func Normalize(name string) string {
	// Caser is stateful, so every call gets its own.
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// Code returns the service code of language name for op.
func Code(op Operation, name string) (string, error) {
	table, ok := codes[op]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	name = Normalize(name)
	code, ok := table[name]
	if !ok {
		return "", fmt.Errorf("%w for %s: %q, supported: %s", ErrUnsupported, op, name,
			strings.Join(Languages(op), ", "))
	}
	return code, nil
}

// CheckPair validates a source and target pair for a paired operation and
// returns their service codes.
func CheckPair(op Operation, source, target string) (sourceCode, targetCode string, err error) {
	if !op.Paired() {
		return "", "", fmt.Errorf("%w: %s does not take a target language", ErrUnknownOperation, op)
	}
	if sourceCode, err = Code(op, source); err != nil {
		return "", "", err
	}
	if targetCode, err = Code(op, target); err != nil {
		return "", "", err
	}
	source, target = Normalize(source), Normalize(target)
	if !compatibility[op].allows(source, target) {
		return "", "", fmt.Errorf("%w for %s: %s-%s", ErrIncompatible, op, source, target)
	}
	return sourceCode, targetCode, nil
}

// Languages returns supported identifiers of op in sorted order.
func Languages(op Operation) []string {
	table := codes[op]
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Targets returns identifiers that source may be paired with for op.
func Targets(op Operation, source string) []string {
	allowed := compatibility[op][Normalize(source)]
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Voice returns the voice profile for a translation target.
func Voice(name string) (string, bool) {
	voice, ok := voices[Normalize(name)]
	return voice, ok
}

// ParseOperation resolves an operation by name.
func ParseOperation(name string) (Operation, error) {
	op := Operation(Normalize(name))
	if _, ok := codes[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}
