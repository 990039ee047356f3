package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTranscriptCapacity bounds the in-memory transcript ring.
const DefaultTranscriptCapacity = 200

// Transcript captures a single answered question for operators.
type Transcript struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	Sources      []string  `json:"sources"`
	UsedFallback bool      `json:"used_fallback"`
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// TranscriptLog is a fixed-capacity ring of recent transcripts. Safe for
// concurrent use.
type TranscriptLog struct {
	mu       sync.Mutex
	entries  []*Transcript
	next     int
	capacity int
}

// NewTranscriptLog creates a transcript log with the given capacity.
func NewTranscriptLog(capacity int) *TranscriptLog {
	if capacity <= 0 {
		capacity = DefaultTranscriptCapacity
	}
	return &TranscriptLog{
		entries:  make([]*Transcript, 0, capacity),
		capacity: capacity,
	}
}

// Record stores a transcript, assigning its ID and timestamp. The oldest
// entry is overwritten once the ring is full.
func (l *TranscriptLog) Record(t *Transcript) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, t)
		l.next = len(l.entries) % l.capacity
		return
	}
	l.entries[l.next] = t
	l.next = (l.next + 1) % l.capacity
}

// Recent returns up to limit transcripts, most recent first.
func (l *TranscriptLog) Recent(limit int) []*Transcript {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}

	out := make([]*Transcript, 0, limit)
	idx := l.next - 1
	for len(out) < limit {
		if idx < 0 {
			idx = len(l.entries) - 1
		}
		out = append(out, l.entries[idx])
		idx--
	}
	return out
}

// Len returns the number of stored transcripts.
func (l *TranscriptLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
