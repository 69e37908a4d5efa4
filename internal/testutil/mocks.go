package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTranslator is a mock for translate.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) Name() string {
	return "mock"
}

// MockPhraseSource is a mock for service.PhraseSource
type MockPhraseSource struct {
	mock.Mock
}

func (m *MockPhraseSource) RandomPairing() string {
	args := m.Called()
	return args.String(0)
}
