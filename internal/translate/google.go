package translate

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gtranslate "google.golang.org/api/translate/v2"
)

// GoogleClient calls the Cloud Translation v2 API
type GoogleClient struct {
	service *gtranslate.Service
}

// NewGoogleClient creates a Cloud Translation client.
// Without an API key the client falls back to Application Default Credentials.
func NewGoogleClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GoogleClient, error) {
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	service, err := gtranslate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation service: %w", err)
	}

	return &GoogleClient{service: service}, nil
}

func (c *GoogleClient) Name() string {
	return ProviderGoogle
}

// Translate implements Translator
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := c.service.Translations.List([]string{text}, targetLang).
		Source(sourceLang).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("translations.list > %w", err)
	}
	if len(resp.Translations) == 0 || resp.Translations[0].TranslatedText == "" {
		return "", ErrEmptyTranslation
	}

	return resp.Translations[0].TranslatedText, nil
}
