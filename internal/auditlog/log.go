package auditlog

import (
	"sync"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// Log is the append-only chat audit trail. Entries are never mutated or
// removed and Recent returns them in insertion order, oldest first.
type Log interface {
	Append(entry domain.ChatLogEntry)
	Recent(n int) []domain.ChatLogEntry
	Len() int
}

// memoryLog keeps every entry in process memory, unbounded for the process
// lifetime. Appends are serialized by the mutex; there is no eviction.
type memoryLog struct {
	mu      sync.Mutex
	entries []domain.ChatLogEntry
}

// NewMemoryLog creates an empty in-memory log.
func NewMemoryLog() Log {
	return &memoryLog{}
}

func (l *memoryLog) Append(entry domain.ChatLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Recent returns up to n of the newest entries, most recent last.
func (l *memoryLog) Recent(n int) []domain.ChatLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]domain.ChatLogEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

func (l *memoryLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
