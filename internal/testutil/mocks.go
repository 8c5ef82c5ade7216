package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codeberg.org/snonux/lingopad/internal/translation"
)

// MockModel is a translation.Model driven by testify expectations
type MockModel struct {
	mock.Mock
}

// Translate records the call and returns the configured result
func (m *MockModel) Translate(ctx context.Context, req translation.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Name returns a fixed model name
func (m *MockModel) Name() string {
	return "mock-model"
}

// Loader returns a loader that hands out m
func (m *MockModel) Loader() translation.LoadFunc {
	return func(context.Context) (translation.Model, error) {
		return m, nil
	}
}

// MockTranslator stands in for the translation adapter
type MockTranslator struct {
	mock.Mock
}

// Translate records the call and returns the configured text
func (m *MockTranslator) Translate(ctx context.Context, text, src, tgt string) string {
	args := m.Called(ctx, text, src, tgt)
	return args.String(0)
}

// LoadError returns the configured load error
func (m *MockTranslator) LoadError() error {
	args := m.Called()
	return args.Error(0)
}

// MockDeckExporter records deck exports
type MockDeckExporter struct {
	mock.Mock
}

// ExportDeck records the call and returns the configured error
func (m *MockDeckExporter) ExportDeck(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
