package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChatAPI mocks the chat completion API
type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) CreateCompletion(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage)
	return args.String(0), args.Error(1)
}

func TestGenerateAnswer_Success(t *testing.T) {
	mockAPI := new(MockChatAPI)
	client := &Client{api: mockAPI}

	mockAPI.On("CreateCompletion", mock.Anything, "system", "question").
		Return("the answer", nil)

	answer, err := client.GenerateAnswer(context.Background(), "system", "question")
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
	mockAPI.AssertExpectations(t)
}

func TestGenerateAnswer_EmptyPrompt(t *testing.T) {
	client := &Client{api: new(MockChatAPI)}

	_, err := client.GenerateAnswer(context.Background(), "", "question")
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = client.GenerateAnswer(context.Background(), "system", "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestGenerateAnswer_APIError(t *testing.T) {
	mockAPI := new(MockChatAPI)
	client := &Client{api: mockAPI}

	mockAPI.On("CreateCompletion", mock.Anything, "system", "question").
		Return("", errors.New("rate limited"))

	_, err := client.GenerateAnswer(context.Background(), "system", "question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestNewClientFromEnv_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewClientFromEnv()
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
