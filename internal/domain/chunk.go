package domain

import "strings"

// ChunkRole is the visibility tag of a knowledge chunk.
type ChunkRole string

const (
	// RoleAll makes a chunk visible to every requester.
	RoleAll       ChunkRole = "all"
	RoleVolunteer ChunkRole = "volunteer"
	RoleOrganizer ChunkRole = "organizer"
	RoleAdmin     ChunkRole = "admin"
)

// KnowledgeChunk is a single retrievable unit of help-center text.
// Chunks are loaded once at startup and never mutated afterwards.
type KnowledgeChunk struct {
	ID       string    `json:"id"`
	Role     ChunkRole `json:"role"`
	Category string    `json:"category"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
}

// Text returns the string the chunk is vectorized from.
func (c *KnowledgeChunk) Text() string {
	return c.Title + " " + c.Content
}

// ValidateChunk validates a KnowledgeChunk instance
func ValidateChunk(c *KnowledgeChunk) error {
	if c == nil {
		return ErrEmptyChunkText
	}
	if c.ID == "" {
		return ErrMissingChunkID
	}
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Content) == "" {
		return ErrEmptyChunkText
	}
	if !isValidChunkRole(c.Role) {
		return ErrInvalidChunkRole
	}
	return nil
}

// NormalizeRequesterRole canonicalizes a requester-supplied role string.
// An empty or unknown role grants access to "all" chunks only.
func NormalizeRequesterRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// isValidChunkRole checks if a ChunkRole is part of the closed set
func isValidChunkRole(r ChunkRole) bool {
	switch r {
	case RoleAll, RoleVolunteer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}
