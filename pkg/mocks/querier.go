// Package mocks holds testify mocks of the querier interfaces.
package mocks

import (
	context "context"

	parser "github.com/darkclainer/revgo/pkg/parser"
	mock "github.com/stretchr/testify/mock"
)

// Querier is a mock type for the Querier type
type Querier struct {
	mock.Mock
}

// Close provides a mock function with given fields: ctx
func (_m *Querier) Close(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Conjugation provides a mock function with given fields: ctx, text, language, done
func (_m *Querier) Conjugation(ctx context.Context, text string, language string, done ...func(*parser.Conjugation, error)) (*parser.Conjugation, error) {
	ret := _m.Called(ctx, text, language)

	var r0 *parser.Conjugation
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *parser.Conjugation); ok {
		r0 = rf(ctx, text, language)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*parser.Conjugation)
	}

	r1 := ret.Error(1)
	for _, fn := range done {
		fn(r0, r1)
	}
	return r0, r1
}

// Context provides a mock function with given fields: ctx, text, source, target, done
func (_m *Querier) Context(ctx context.Context, text string, source string, target string, done ...func(*parser.Context, error)) (*parser.Context, error) {
	ret := _m.Called(ctx, text, source, target)

	var r0 *parser.Context
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *parser.Context); ok {
		r0 = rf(ctx, text, source, target)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*parser.Context)
	}

	r1 := ret.Error(1)
	for _, fn := range done {
		fn(r0, r1)
	}
	return r0, r1
}

// SpellCheck provides a mock function with given fields: ctx, text, language, done
func (_m *Querier) SpellCheck(ctx context.Context, text string, language string, done ...func(*parser.SpellCheck, error)) (*parser.SpellCheck, error) {
	ret := _m.Called(ctx, text, language)

	var r0 *parser.SpellCheck
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *parser.SpellCheck); ok {
		r0 = rf(ctx, text, language)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*parser.SpellCheck)
	}

	r1 := ret.Error(1)
	for _, fn := range done {
		fn(r0, r1)
	}
	return r0, r1
}

// Synonyms provides a mock function with given fields: ctx, text, language, done
func (_m *Querier) Synonyms(ctx context.Context, text string, language string, done ...func(*parser.Synonyms, error)) (*parser.Synonyms, error) {
	ret := _m.Called(ctx, text, language)

	var r0 *parser.Synonyms
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *parser.Synonyms); ok {
		r0 = rf(ctx, text, language)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*parser.Synonyms)
	}

	r1 := ret.Error(1)
	for _, fn := range done {
		fn(r0, r1)
	}
	return r0, r1
}

// Translation provides a mock function with given fields: ctx, text, source, target, done
func (_m *Querier) Translation(ctx context.Context, text string, source string, target string, done ...func(*parser.Translation, error)) (*parser.Translation, error) {
	ret := _m.Called(ctx, text, source, target)

	var r0 *parser.Translation
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *parser.Translation); ok {
		r0 = rf(ctx, text, source, target)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*parser.Translation)
	}

	r1 := ret.Error(1)
	for _, fn := range done {
		fn(r0, r1)
	}
	return r0, r1
}
