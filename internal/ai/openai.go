package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

const assetSystemPrompt = "You are a web developer. Reply with the requested file content only, without explanations."

// OpenAICompleter sends each instruction as a single chat completion.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter returns nil when apiKey is empty; callers treat a nil
// completer as an unavailable tool. baseURL overrides the API endpoint when
// set (useful for compatible gateways).
func NewOpenAICompleter(apiKey, model, baseURL string) *OpenAICompleter {
	if apiKey == "" {
		return nil
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAICompleter{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrToolNotFound
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: assetSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
