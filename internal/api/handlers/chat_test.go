package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voluntree/assist/internal/domain"
)

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) GetAnswer(ctx context.Context, question, role string) (*domain.Answer, error) {
	args := m.Called(ctx, question, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func postChat(t *testing.T, handler *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)
	return rec
}

func TestChatHandler_Ask_Success(t *testing.T) {
	mockSvc := new(MockAnswerService)
	handler := NewChatHandler(mockSvc)

	mockSvc.On("GetAnswer", mock.Anything, "how do I register", "volunteer").
		Return(&domain.Answer{
			Answer:  "Click Register on the event page.",
			Sources: []string{"How to register"},
		}, nil)

	rec := postChat(t, handler, `{"question": "how do I register", "role": "volunteer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Click Register on the event page.", resp.Data.Answer)
	assert.Equal(t, []string{"How to register"}, resp.Data.Sources)
	assert.Empty(t, resp.Data.Notice)
	mockSvc.AssertExpectations(t)
}

func TestChatHandler_Ask_FallbackNotice(t *testing.T) {
	mockSvc := new(MockAnswerService)
	handler := NewChatHandler(mockSvc)

	mockSvc.On("GetAnswer", mock.Anything, "how do I register", "volunteer").
		Return(&domain.Answer{
			Answer:       "How to register\n\nClick Register and fill the form",
			Sources:      []string{"How to register"},
			UsedFallback: true,
		}, nil)

	rec := postChat(t, handler, `{"question": "how do I register", "role": "volunteer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, FallbackNotice, resp.Data.Notice)
}

func TestChatHandler_Ask_EmptyQuestion(t *testing.T) {
	mockSvc := new(MockAnswerService)
	handler := NewChatHandler(mockSvc)

	rec := postChat(t, handler, `{"question": "  ", "role": "volunteer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSvc.AssertNotCalled(t, "GetAnswer", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatHandler_Ask_InvalidBody(t *testing.T) {
	handler := NewChatHandler(new(MockAnswerService))

	rec := postChat(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_Ask_ServiceValidationError(t *testing.T) {
	mockSvc := new(MockAnswerService)
	handler := NewChatHandler(mockSvc)

	mockSvc.On("GetAnswer", mock.Anything, "hello", "volunteer").
		Return(nil, domain.ErrEmptyQuestion)

	rec := postChat(t, handler, `{"question": "hello", "role": "volunteer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
