// Package gemini is the connector for the Google generative-language REST
// API. It exposes a single text-completion operation; prompt construction and
// output parsing live in internal/genai.
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideanest/ideanest-backend/internal/config"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/integration/common"
	pkghttp "github.com/ideanest/ideanest-backend/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.GeminiConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type generateContentRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
			Text  string        `json:"text"`
		} `json:"content"`
	} `json:"candidates"`
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Complete sends one prompt to the generateContent endpoint and returns the
// raw completion text. One attempt, no retry: a failed completion is retried
// by the user re-triggering the action, never by this connector.
func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", entity.ErrNotConfigured
	}

	ctxzap.Info(ctx, "requesting text completion",
		zap.String("model", c.config.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	req := &generateContentRequest{
		Contents: []requestContent{
			{Parts: []contentPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2000,
		},
		SafetySettings: defaultSafetySettings,
	}

	endpoint := fmt.Sprintf("/v1/models/%s:generateContent", c.config.Model)

	var resp generateContentResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp,
		pkghttp.WithHeader("x-goog-api-key", c.config.APIKey),
	)
	if err != nil {
		ctxzap.Error(ctx, "completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	text, err := extractText(&resp)
	if err != nil {
		ctxzap.Error(ctx, "completion response missing content", zap.Error(err))
		return "", err
	}

	ctxzap.Info(ctx, "completion received", zap.Int("text_length", len(text)))

	return text, nil
}

// extractText handles the two response shapes the API is known to produce:
// text nested under content.parts, or directly under content.
func extractText(resp *generateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: response has no candidates", entity.ErrGenerationFailed)
	}

	content := resp.Candidates[0].Content
	if len(content.Parts) > 0 && content.Parts[0].Text != "" {
		return content.Parts[0].Text, nil
	}
	if content.Text != "" {
		return content.Text, nil
	}

	return "", fmt.Errorf("%w: unexpected response structure", entity.ErrGenerationFailed)
}

// IsAvailable reports whether the service answers a trivial completion. Used
// by the diagnostics endpoint only; it never gates the main flow.
func (c *Connector) IsAvailable(ctx context.Context) bool {
	if c.config.APIKey == "" {
		return false
	}

	if _, err := c.Complete(ctx, "Test"); err != nil {
		ctxzap.Warn(ctx, "generative service unavailable", zap.Error(err))
		return false
	}

	return true
}
