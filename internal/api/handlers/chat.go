package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/voluntree/assist/internal/api"
	"github.com/voluntree/assist/internal/domain"
)

// FallbackNotice is surfaced to clients when the generated answer path was
// unavailable and the response came from the help articles directly.
const FallbackNotice = "Answered from the help articles directly; the assistant is temporarily unavailable."

type AnswerService interface {
	GetAnswer(ctx context.Context, question, role string) (*domain.Answer, error)
}

type ChatHandler struct {
	svc AnswerService
}

func NewChatHandler(svc AnswerService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Question string `json:"question"`
	Role     string `json:"role"`
}

type ChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
	Notice  string   `json:"notice,omitempty"`
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		api.Error(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.svc.GetAnswer(r.Context(), req.Question, req.Role)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	resp := &ChatResponse{
		Answer:  answer.Answer,
		Sources: answer.Sources,
	}
	if answer.UsedFallback {
		resp.Notice = FallbackNotice
	}

	api.Success(w, http.StatusOK, resp)
}
