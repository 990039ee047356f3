package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/voluntree/assist/internal/domain"
	"github.com/voluntree/assist/internal/retrieval"
	"github.com/voluntree/assist/internal/telemetry"
)

const (
	// DefaultTopK is the number of chunks handed to the chat model as context.
	DefaultTopK = 4
	// DefaultChatTimeout bounds a single chat completion call.
	DefaultChatTimeout = 20 * time.Second
)

// ChatClient generates a natural-language answer from a system prompt and
// a user question.
type ChatClient interface {
	GenerateAnswer(ctx context.Context, systemPrompt, question string) (string, error)
}

// AnswerService composes answers: it retrieves role-eligible chunks,
// grounds a chat completion on them, and degrades to the top chunk
// verbatim when the chat provider is unavailable or fails.
type AnswerService struct {
	index       *retrieval.Index
	chat        ChatClient
	transcripts *TranscriptLog
	topK        int
	chatTimeout time.Duration
}

// AnswerOption customizes an AnswerService.
type AnswerOption func(*AnswerService)

// WithTopK overrides the number of chunks retrieved per question.
func WithTopK(k int) AnswerOption {
	return func(s *AnswerService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithChatTimeout overrides the chat completion timeout.
func WithChatTimeout(d time.Duration) AnswerOption {
	return func(s *AnswerService) {
		if d > 0 {
			s.chatTimeout = d
		}
	}
}

// NewAnswerService creates an AnswerService. A nil chat client is valid
// and routes every question through the fallback path.
func NewAnswerService(index *retrieval.Index, chat ChatClient, transcripts *TranscriptLog, opts ...AnswerOption) *AnswerService {
	s := &AnswerService{
		index:       index,
		chat:        chat,
		transcripts: transcripts,
		topK:        DefaultTopK,
		chatTimeout: DefaultChatTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAnswer answers a question for the given requester role. Retrieval and
// generation failures never surface as errors: the caller always gets an
// answer, degraded if necessary.
func (s *AnswerService) GetAnswer(ctx context.Context, question, role string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	start := time.Now()
	ranked := s.index.Retrieve(question, role, s.topK)

	spanCtx, span := telemetry.StartSpan(ctx, "answer.compose", telemetry.SpanAttributes{
		Role:      domain.NormalizeRequesterRole(role),
		Operation: "get_answer",
		ChunkHits: len(ranked),
	})
	answer := s.compose(spanCtx, question, role, ranked)
	span.End()

	if s.transcripts != nil {
		s.transcripts.Record(&Transcript{
			Role:         domain.NormalizeRequesterRole(role),
			Question:     question,
			Answer:       answer.Answer,
			Sources:      answer.Sources,
			UsedFallback: answer.UsedFallback,
			DurationMS:   time.Since(start).Milliseconds(),
		})
	}

	return answer, nil
}

func (s *AnswerService) compose(ctx context.Context, question, role string, ranked []retrieval.ScoredChunk) *domain.Answer {
	if len(ranked) == 0 {
		return &domain.Answer{
			Answer:       domain.NoInformationMessage,
			Sources:      []string{},
			UsedFallback: true,
		}
	}

	sources := make([]string, len(ranked))
	for i, r := range ranked {
		sources[i] = r.Chunk.Title
	}

	if s.chat != nil {
		chatCtx, cancel := context.WithTimeout(ctx, s.chatTimeout)
		defer cancel()

		generated, err := s.chat.GenerateAnswer(chatCtx, buildSystemPrompt(role, ranked), question)
		if err == nil && strings.TrimSpace(generated) != "" {
			return &domain.Answer{
				Answer:       strings.TrimSpace(generated),
				Sources:      sources,
				UsedFallback: false,
			}
		}
		if err != nil {
			log.Printf("chat completion failed, using fallback: %v", err)
			telemetry.CaptureError(ctx, err)
		}
	}

	top := ranked[0].Chunk
	return &domain.Answer{
		Answer:       top.Title + "\n\n" + top.Content,
		Sources:      sources,
		UsedFallback: true,
	}
}

// buildSystemPrompt assembles the grounding instructions and the ranked
// context passed to the chat model.
func buildSystemPrompt(role string, ranked []retrieval.ScoredChunk) string {
	normalized := domain.NormalizeRequesterRole(role)
	if normalized == "" {
		normalized = "guest"
	}

	var b strings.Builder
	b.WriteString("You are the help assistant of a volunteer event-management platform. ")
	fmt.Fprintf(&b, "You are talking to a user with the %q role.\n", normalized)
	b.WriteString("Answer using ONLY the knowledge below. ")
	b.WriteString("If the knowledge does not cover the question, say you don't have that information and suggest contacting the event coordinator. ")
	b.WriteString("If the user asks about features reserved for another role, tell them the feature is not available for their role.\n\n")
	b.WriteString("Knowledge:\n")
	for i, r := range ranked {
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, r.Chunk.Title, r.Chunk.Content)
	}
	return b.String()
}
