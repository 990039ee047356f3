package handlers

import (
	"net/http"
	"strconv"

	"github.com/voluntree/assist/internal/api"
	"github.com/voluntree/assist/internal/domain"
	"github.com/voluntree/assist/internal/retrieval"
	"github.com/voluntree/assist/internal/service"
)

type KnowledgeHandler struct {
	chunks      []*domain.KnowledgeChunk
	transcripts *service.TranscriptLog
}

func NewKnowledgeHandler(chunks []*domain.KnowledgeChunk, transcripts *service.TranscriptLog) *KnowledgeHandler {
	return &KnowledgeHandler{chunks: chunks, transcripts: transcripts}
}

type ChunkResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

type KnowledgeListResponse struct {
	Chunks []*ChunkResponse `json:"chunks"`
}

// List returns the chunks visible to the requester role given in the
// "role" query parameter. No role lists "all" chunks only.
func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")

	eligible := retrieval.FilterEligible(h.chunks, role)
	chunks := make([]*ChunkResponse, len(eligible))
	for i, chunk := range eligible {
		chunks[i] = &ChunkResponse{
			ID:       chunk.ID,
			Role:     string(chunk.Role),
			Category: chunk.Category,
			Title:    chunk.Title,
		}
	}

	api.Success(w, http.StatusOK, &KnowledgeListResponse{Chunks: chunks})
}

type TranscriptListResponse struct {
	Transcripts []*service.Transcript `json:"transcripts"`
}

// Transcripts returns recent question/answer records, most recent first.
func (h *KnowledgeHandler) Transcripts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			api.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	api.Success(w, http.StatusOK, &TranscriptListResponse{
		Transcripts: h.transcripts.Recent(limit),
	})
}
