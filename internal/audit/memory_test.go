package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecorderRecordsInOrder(t *testing.T) {
	rec := NewMemoryRecorder()
	ctx := context.Background()

	rec.RecordIntroAnswer(ctx, 7, "from a friend")
	rec.RecordTurn(ctx, 7, "chat", "gpt-4", nil)
	rec.RecordTurn(ctx, 7, "speech", "voice-paimon", errors.New("quota exceeded"))

	entries := rec.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, KindIntroAnswer, entries[0].Kind)
	assert.Equal(t, int64(7), entries[0].UserID)
	assert.Equal(t, "from a friend", entries[0].Text)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	assert.Equal(t, KindTurn, entries[1].Kind)
	assert.Equal(t, "chat", entries[1].Capability)
	assert.Equal(t, "gpt-4", entries[1].Model)
	assert.Empty(t, entries[1].Error)

	assert.Equal(t, "quota exceeded", entries[2].Error)
}

func TestMemoryRecorderEntriesIsACopy(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.RecordTurn(context.Background(), 1, "chat", "gpt-4", nil)

	entries := rec.Entries()
	entries[0].Model = "tampered"

	assert.Equal(t, "gpt-4", rec.Entries()[0].Model)
}

func TestMemoryRecorderConcurrentWrites(t *testing.T) {
	rec := NewMemoryRecorder()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			rec.RecordTurn(ctx, n, "chat", "gpt-4", nil)
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, rec.Entries(), 50)
}
