package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateChunk(t *testing.T) {
	valid := &KnowledgeChunk{
		ID:       "register",
		Role:     RoleAll,
		Category: "events",
		Title:    "How to register",
		Content:  "Click Register and fill the form",
	}
	assert.NoError(t, ValidateChunk(valid))
}

func TestValidateChunk_MissingID(t *testing.T) {
	chunk := &KnowledgeChunk{Role: RoleAll, Title: "T", Content: "C"}
	assert.ErrorIs(t, ValidateChunk(chunk), ErrMissingChunkID)
}

func TestValidateChunk_BlankTitleOrContent(t *testing.T) {
	chunk := &KnowledgeChunk{ID: "a", Role: RoleAll, Title: " ", Content: "C"}
	assert.ErrorIs(t, ValidateChunk(chunk), ErrEmptyChunkText)

	chunk = &KnowledgeChunk{ID: "a", Role: RoleAll, Title: "T", Content: ""}
	assert.ErrorIs(t, ValidateChunk(chunk), ErrEmptyChunkText)
}

func TestValidateChunk_UnknownRole(t *testing.T) {
	chunk := &KnowledgeChunk{ID: "a", Role: "sponsor", Title: "T", Content: "C"}
	assert.ErrorIs(t, ValidateChunk(chunk), ErrInvalidChunkRole)
}

func TestNormalizeRequesterRole(t *testing.T) {
	assert.Equal(t, "admin", NormalizeRequesterRole("  Admin "))
	assert.Equal(t, "volunteer", NormalizeRequesterRole("VOLUNTEER"))
	assert.Equal(t, "", NormalizeRequesterRole("   "))
}

func TestChunkText(t *testing.T) {
	chunk := &KnowledgeChunk{Title: "How to register", Content: "Click Register"}
	assert.Equal(t, "How to register Click Register", chunk.Text())
}
