package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	config "github.com/maheshrc27/content-pipeline/configs"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService wraps the language and image model endpoints.
type OpenAIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
}

type openAIService struct {
	cfg    config.Config
	client *openai.Client
}

// NewOpenAIService builds the SDK client against cfg.OpenAI.BaseURL. A nil
// http client means http.DefaultClient.
func NewOpenAIService(cfg config.Config, client *http.Client) OpenAIService {
	if client == nil {
		client = http.DefaultClient
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAI.BaseURL
	}
	clientConfig.HTTPClient = client

	return &openAIService{cfg: cfg, client: openai.NewClientWithConfig(clientConfig)}
}

func (s *openAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.OpenAI.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", providerError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from language model")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *openAIService) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Model:          s.cfg.OpenAI.ImageModel,
		Prompt:         prompt,
		Size:           size,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", providerError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("no image url returned from image model")
	}
	return resp.Data[0].URL, nil
}

// providerError keeps the provider's status and message in one error value.
func providerError(err error) error {
	slog.Info(err.Error())

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("model provider error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("model provider error (status %d): %w", reqErr.HTTPStatusCode, reqErr.Err)
	}
	return fmt.Errorf("model provider request failed: %w", err)
}
