package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha-utils/pkg/models"
)

func appendMessages(t *testing.T, store Store, sessionID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := store.Append(context.Background(), sessionID, models.ConversationMessage{
			ID:     fmt.Sprintf("msg-%d", i),
			Text:   fmt.Sprintf("message %d", i),
			Sender: models.SenderUser,
		})
		require.NoError(t, err)
	}
}

func TestMemoryStoreAppendAndRecent(t *testing.T) {
	store := NewMemoryStore(50)
	appendMessages(t, store, "s1", 5)

	msgs, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	assert.Equal(t, "message 0", msgs[0].Text)
	assert.Equal(t, "message 4", msgs[4].Text)
}

func TestMemoryStoreRecentWindow(t *testing.T) {
	store := NewMemoryStore(50)
	appendMessages(t, store, "s1", 10)

	msgs, err := store.Recent(context.Background(), "s1", 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "message 7", msgs[0].Text)
	assert.Equal(t, "message 9", msgs[2].Text)
}

func TestMemoryStoreCapsSession(t *testing.T) {
	store := NewMemoryStore(4)
	appendMessages(t, store, "s1", 10)

	msgs, err := store.Recent(context.Background(), "s1", 100)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "message 6", msgs[0].Text)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore(50)
	appendMessages(t, store, "s1", 3)
	appendMessages(t, store, "s2", 1)

	msgs, err := store.Recent(context.Background(), "s2", 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	msgs, err = store.Recent(context.Background(), "unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(50)
	appendMessages(t, store, "s1", 2)

	msgs, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	msgs[0].Text = "mutated"

	again, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, "message 0", again[0].Text)
}

func TestMemoryStorePingAndClose(t *testing.T) {
	store := NewMemoryStore(50)
	assert.NoError(t, store.Ping(context.Background()))

	appendMessages(t, store, "s1", 2)
	require.NoError(t, store.Close())

	msgs, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "disha:session:abc:messages", sessionKey("abc"))
}
