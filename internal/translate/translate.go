package translate

import (
	"context"
	"errors"
)

// Translator renders text from one language into another
type Translator interface {
	// Translate converts text from sourceLang to targetLang (ISO 639-1 codes, e.g. "en", "pl")
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	// Name identifies the provider in logs and metrics
	Name() string
}

// ErrEmptyTranslation is returned when the provider answers without any translated text
var ErrEmptyTranslation = errors.New("translate: provider returned no translation")

const (
	ProviderGoogle         = "google"
	ProviderLibreTranslate = "libretranslate"
)
