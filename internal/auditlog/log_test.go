package auditlog

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

func entry(i int) domain.ChatLogEntry {
	return domain.ChatLogEntry{
		ID:        fmt.Sprintf("id-%d", i),
		Timestamp: time.Now(),
		Username:  "alext",
		Message:   fmt.Sprintf("message %d", i),
		Topic:     domain.TopicGeneral,
	}
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	log := NewMemoryLog()

	for i := 0; i < 5; i++ {
		log.Append(entry(i))
	}

	entries := log.Recent(5)
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("id-%d", i), e.ID)
	}
}

func TestRecentLimits(t *testing.T) {
	log := NewMemoryLog()
	for i := 0; i < 30; i++ {
		log.Append(entry(i))
	}

	recent := log.Recent(25)
	require.Len(t, recent, 25)
	// newest entries, most recent last
	assert.Equal(t, "id-5", recent[0].ID)
	assert.Equal(t, "id-29", recent[24].ID)

	assert.Len(t, log.Recent(100), 30)
	assert.Len(t, log.Recent(0), 30)
	assert.Equal(t, 30, log.Len())
}

func TestRecentReturnsCopy(t *testing.T) {
	log := NewMemoryLog()
	log.Append(entry(0))

	snapshot := log.Recent(1)
	snapshot[0].Reply = "mutated"

	assert.Empty(t, log.Recent(1)[0].Reply)
}

func TestConcurrentAppends(t *testing.T) {
	log := NewMemoryLog()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Append(entry(w*perWriter + i))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, log.Len())
}
