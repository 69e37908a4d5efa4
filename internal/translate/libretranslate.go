package translate

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// LibreTranslateClient calls a LibreTranslate instance over HTTP
type LibreTranslateClient struct {
	httpClient *resty.Client
	apiKey     string
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// NewLibreTranslateClient creates a client for the instance at baseURL
func NewLibreTranslateClient(baseURL, apiKey string) *LibreTranslateClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &LibreTranslateClient{
		httpClient: client,
		apiKey:     apiKey,
	}
}

func (c *LibreTranslateClient) Close() error {
	return c.httpClient.Close()
}

func (c *LibreTranslateClient) Name() string {
	return ProviderLibreTranslate
}

// Translate implements Translator
func (c *LibreTranslateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(libreTranslateRequest{
			Q:      text,
			Source: sourceLang,
			Target: targetLang,
			Format: "text",
			APIKey: c.apiKey,
		}).
		SetResult(&libreTranslateResponse{}).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*libreTranslateResponse)
	if !ok || body.TranslatedText == "" {
		return "", ErrEmptyTranslation
	}

	return body.TranslatedText, nil
}
