package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the OpenAI model used for answer generation
const DefaultChatModel = openai.GPT4oMini

var (
	// ErrEmptyPrompt is returned when the prompt or question is empty
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
	// ErrNoAPIKey is returned when OpenAI API key is not set
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
	// ErrEmptyCompletion is returned when the API returns no choices
	ErrEmptyCompletion = errors.New("no completion returned")
)

// ChatAPI defines the interface for chat completion
type ChatAPI interface {
	CreateCompletion(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Client wraps the OpenAI API client
type Client struct {
	api ChatAPI
}

type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdapter(apiKey, model string) *OpenAIAdapter {
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenAIAdapter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// CreateCompletion calls the OpenAI chat completion API
func (a *OpenAIAdapter) CreateCompletion(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

type Config struct {
	APIKey    string
	ChatModel string
}

// NewClient creates a new OpenAI client using defaults.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(Config{APIKey: apiKey})
}

// NewClientWithConfig creates a new OpenAI client with explicit configuration.
func NewClientWithConfig(cfg Config) *Client {
	return &Client{
		api: NewOpenAIAdapter(cfg.APIKey, cfg.ChatModel),
	}
}

// NewClientFromEnv creates a new OpenAI client using OPENAI_API_KEY environment variable
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return NewClient(apiKey), nil
}

// GenerateAnswer produces a completion for the given system prompt and question
func (c *Client) GenerateAnswer(ctx context.Context, systemPrompt, question string) (string, error) {
	if systemPrompt == "" || question == "" {
		return "", ErrEmptyPrompt
	}

	answer, err := c.api.CreateCompletion(ctx, systemPrompt, question)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	return answer, nil
}
